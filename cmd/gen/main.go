// Command gen regenerates the typed gorm query helpers for the persistence models.
package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.KitModel{},
		model.TourModel{},
		model.ChurchItemModel{},
		model.CustomerModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.SessionModel{},
	)

	g.Execute()
}
