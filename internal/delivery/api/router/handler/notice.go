package handler

import (
	"fmt"
	"strings"

	"storefront/internal/domain/entity"
)

// CartNotice tells the client which entries the cleanup pass removed from its cart.
type CartNotice struct {
	Message    string               `json:"message"`
	Deleted    []entity.CartRemoval `json:"deleted,omitempty"`
	OutOfStock []entity.CartRemoval `json:"out_of_stock,omitempty"`
}

func newCartNotice(report *entity.CleanupReport) *CartNotice {
	if report == nil || (len(report.Deleted) == 0 && len(report.OutOfStock) == 0) {
		return nil
	}

	var parts []string
	if n := len(report.Deleted); n > 0 {
		parts = append(parts, fmt.Sprintf("%d item(s) no longer exist", n))
	}
	if len(report.OutOfStock) > 0 {
		names := make([]string, 0, len(report.OutOfStock))
		for _, removal := range report.OutOfStock {
			names = append(names, removal.Name)
		}
		parts = append(parts, strings.Join(names, ", ")+" went out of stock")
	}

	return &CartNotice{
		Message:    "Some items were removed from your cart: " + strings.Join(parts, "; "),
		Deleted:    report.Deleted,
		OutOfStock: report.OutOfStock,
	}
}
