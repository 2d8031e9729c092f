package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(productType ProductType, price string) *Product {
	return &Product{
		ID:        uuid.New(),
		Type:      productType,
		Name:      string(productType) + " item",
		Price:     decimal.RequireFromString(price),
		Available: true,
	}
}

func TestGenerateCartKey_StableUnderFieldOrder(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	a := map[string]string{FieldSize: "M", FieldCallUpNumber: "LA/24A/1234"}
	b := map[string]string{FieldCallUpNumber: "LA/24A/1234", FieldSize: "M"}

	assert.Equal(t, GenerateCartKey(ProductTypeKit, id, a), GenerateCartKey(ProductTypeKit, id, b))
}

func TestGenerateCartKey_Discriminates(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	base := GenerateCartKey(ProductTypeKit, id, map[string]string{FieldSize: "M"})

	tests := []struct {
		name   string
		pType  ProductType
		id     uuid.UUID
		fields map[string]string
	}{
		{name: "different value", pType: ProductTypeKit, id: id, fields: map[string]string{FieldSize: "L"}},
		{name: "different field name", pType: ProductTypeKit, id: id, fields: map[string]string{"colour": "M"}},
		{name: "extra field", pType: ProductTypeKit, id: id, fields: map[string]string{FieldSize: "M", FieldCustomNameText: "ADA"}},
		{name: "no fields", pType: ProductTypeKit, id: id, fields: nil},
		{name: "different type", pType: ProductTypeChurch, id: id, fields: map[string]string{FieldSize: "M"}},
		{name: "different id", pType: ProductTypeKit, id: uuid.New(), fields: map[string]string{FieldSize: "M"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotEqual(t, base, GenerateCartKey(tt.pType, tt.id, tt.fields))
		})
	}
}

func TestGenerateCartKey_EmptyFieldsHasNoTrailingSeparator(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	key := GenerateCartKey(ProductTypeTour, id, map[string]string{})

	assert.Equal(t, "tour:::"+id.String(), key)
	assert.Equal(t, key, GenerateCartKey(ProductTypeTour, id, nil))
}

func TestGenerateCartKey_SeparatorsInValuesCannotCollide(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	one := GenerateCartKey(ProductTypeKit, id, map[string]string{"a": "x|b:::y"})
	two := GenerateCartKey(ProductTypeKit, id, map[string]string{"a": "x", "b": "y"})

	assert.NotEqual(t, one, two)

	ref, err := ParseCartKey(one)
	require.NoError(t, err)
	assert.Equal(t, ProductRef{Type: ProductTypeKit, ID: id}, ref)
}

func TestParseCartKey(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name    string
		key     string
		want    ProductRef
		wantErr bool
	}{
		{name: "base key", key: "kit:::" + id.String(), want: ProductRef{Type: ProductTypeKit, ID: id}},
		{name: "with fields", key: GenerateCartKey(ProductTypeChurch, id, map[string]string{FieldSize: "XL"}), want: ProductRef{Type: ProductTypeChurch, ID: id}},
		{name: "missing separator", key: "kit" + id.String(), wantErr: true},
		{name: "unknown type", key: "hoodie:::" + id.String(), wantErr: true},
		{name: "bad id", key: "kit:::not-a-uuid", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCartKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCartKey))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeVariationFields(t *testing.T) {
	t.Parallel()

	in := map[string]string{
		FieldCallUpNumber:   "la/24a/1234",
		FieldCustomNameText: "ada",
		FieldSize:           "m",
	}

	out := NormalizeVariationFields(in)

	assert.Equal(t, "LA/24A/1234", out[FieldCallUpNumber])
	assert.Equal(t, "ADA", out[FieldCustomNameText])
	assert.Equal(t, "m", out[FieldSize])
	assert.Equal(t, "la/24a/1234", in[FieldCallUpNumber], "input must not be mutated")
	assert.NotNil(t, NormalizeVariationFields(nil))
}

func TestCart_Add_AccumulateVersusOverride(t *testing.T) {
	t.Parallel()

	product := newTestProduct(ProductTypeKit, "2000.00")
	fields := map[string]string{FieldSize: "M"}

	cart := NewCart()
	first := cart.Add(product, 2, false, fields)
	second := cart.Add(product, 3, false, fields)

	require.True(t, first.Added)
	assert.Equal(t, first.Key, second.Key)
	assert.Equal(t, 5, second.Quantity)

	overridden := cart.Add(product, 1, true, fields)
	assert.Equal(t, 1, overridden.Quantity)
	assert.Equal(t, 1, cart.Entries[overridden.Key].Quantity)
	assert.True(t, cart.Modified())
}

func TestCart_Add_NegativeDeltaAccepted(t *testing.T) {
	t.Parallel()

	product := newTestProduct(ProductTypeKit, "10.00")
	cart := NewCart()
	cart.Add(product, 3, false, nil)

	outcome := cart.Add(product, -1, false, nil)

	assert.True(t, outcome.Added)
	assert.Equal(t, 2, outcome.Quantity)
}

func TestCart_Add_RefreshesPrice(t *testing.T) {
	t.Parallel()

	product := newTestProduct(ProductTypeTour, "5000.00")
	cart := NewCart()
	outcome := cart.Add(product, 1, false, nil)

	product.Price = decimal.RequireFromString("5500.00")
	cart.Add(product, 1, false, nil)

	assert.True(t, cart.Entries[outcome.Key].Price.Equal(decimal.RequireFromString("5500.00")))
}

func TestCart_Add_UpperCasesKeyFields(t *testing.T) {
	t.Parallel()

	product := newTestProduct(ProductTypeKit, "100.00")
	cart := NewCart()

	lower := cart.Add(product, 1, false, map[string]string{FieldCallUpNumber: "la/24a/1"})
	upper := cart.Add(product, 1, false, map[string]string{FieldCallUpNumber: "LA/24A/1"})

	assert.Equal(t, lower.Key, upper.Key)
	assert.Equal(t, 2, upper.Quantity)
	assert.Equal(t, "LA/24A/1", cart.Entries[upper.Key].VariationFields[FieldCallUpNumber])
}

func TestCart_Add_RejectsNonPurchasable(t *testing.T) {
	t.Parallel()

	unavailable := newTestProduct(ProductTypeKit, "1.00")
	unavailable.Available = false
	soldOut := newTestProduct(ProductTypeKit, "1.00")
	soldOut.OutOfStock = true

	tests := []struct {
		name    string
		product *Product
		reason  string
	}{
		{name: "nil product", product: nil, reason: RejectReasonUnavailable},
		{name: "unavailable", product: unavailable, reason: RejectReasonUnavailable},
		{name: "out of stock", product: soldOut, reason: RejectReasonOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cart := NewCart()
			outcome := cart.Add(tt.product, 1, false, nil)

			assert.False(t, outcome.Added)
			assert.Equal(t, tt.reason, outcome.Reason)
			assert.True(t, cart.IsEmpty())
			assert.False(t, cart.Modified())
		})
	}
}

func TestCart_Remove(t *testing.T) {
	t.Parallel()

	kit := newTestProduct(ProductTypeKit, "2000.00")

	t.Run("exact variation match", func(t *testing.T) {
		t.Parallel()

		cart := NewCart()
		cart.Add(kit, 1, false, map[string]string{FieldSize: "M"})

		assert.Empty(t, cart.Remove(kit.Ref(), map[string]string{FieldSize: "L"}))
		assert.Equal(t, 1, cart.Len())

		assert.NotEmpty(t, cart.Remove(kit.Ref(), map[string]string{FieldSize: "M"}))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("fields are normalized before matching", func(t *testing.T) {
		t.Parallel()

		cart := NewCart()
		cart.Add(kit, 1, false, map[string]string{FieldCallUpNumber: "ab/1"})

		assert.NotEmpty(t, cart.Remove(kit.Ref(), map[string]string{FieldCallUpNumber: "ab/1"}))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("without fields removes the smallest key", func(t *testing.T) {
		t.Parallel()

		cart := NewCart()
		large := cart.Add(kit, 1, false, map[string]string{FieldSize: "XL"})
		small := cart.Add(kit, 1, false, map[string]string{FieldSize: "L"})
		require.Less(t, small.Key, large.Key)

		assert.Equal(t, small.Key, cart.Remove(kit.Ref(), nil))
		assert.Equal(t, []string{large.Key}, cart.Keys())
	})

	t.Run("empty fields only match an entry without variations", func(t *testing.T) {
		t.Parallel()

		cart := NewCart()
		cart.Add(kit, 1, false, map[string]string{FieldSize: "M"})

		assert.Empty(t, cart.Remove(kit.Ref(), map[string]string{}))
		assert.Equal(t, 1, cart.Len())
	})

	t.Run("other products are untouched", func(t *testing.T) {
		t.Parallel()

		cart := NewCart()
		cart.Add(kit, 1, false, nil)

		assert.Empty(t, cart.Remove(ProductRef{Type: ProductTypeKit, ID: uuid.New()}, nil))
		assert.Equal(t, 1, cart.Len())
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Parallel()

	product := newTestProduct(ProductTypeChurch, "1500.00")
	cart := NewCart()
	outcome := cart.Add(product, 1, false, nil)

	assert.True(t, cart.SetQuantity(outcome.Key, 4))
	assert.Equal(t, 4, cart.Len())

	assert.True(t, cart.SetQuantity(outcome.Key, 0))
	assert.True(t, cart.IsEmpty())

	assert.False(t, cart.SetQuantity("missing", 1))
}

func TestCart_LenAndTotalPrice(t *testing.T) {
	t.Parallel()

	kit := newTestProduct(ProductTypeKit, "2000.00")
	tour := newTestProduct(ProductTypeTour, "5000.00")

	cart := NewCart()
	cart.Add(kit, 2, false, map[string]string{FieldSize: "M"})
	cart.Add(tour, 1, false, map[string]string{FieldCallUpNumber: "x"})

	assert.Equal(t, 3, cart.Len())
	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("9000.00")), cart.TotalPrice().String())
}

func TestCart_TotalPriceUsesStoredPrice(t *testing.T) {
	t.Parallel()

	product := newTestProduct(ProductTypeKit, "100.00")
	cart := NewCart()
	cart.Add(product, 2, false, nil)

	product.Price = decimal.RequireFromString("999.00")

	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("200.00")))
}

func TestCart_LinesReportsCorruptKeys(t *testing.T) {
	t.Parallel()

	product := newTestProduct(ProductTypeKit, "100.00")
	cart := NewCart()
	good := cart.Add(product, 1, false, nil)
	cart.Entries["garbage"] = &CartEntry{Quantity: 1, Price: decimal.NewFromInt(1)}

	lines, corrupt := cart.Lines()

	require.Len(t, lines, 1)
	assert.Equal(t, good.Key, lines[0].Key)
	assert.Equal(t, product.Ref(), lines[0].Ref)
	assert.Equal(t, []string{"garbage"}, corrupt)
}

func TestCart_Clear(t *testing.T) {
	t.Parallel()

	cart := NewCart()
	cart.Clear()
	assert.False(t, cart.Modified())

	cart.Add(newTestProduct(ProductTypeKit, "1.00"), 1, false, nil)
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Len())
}
