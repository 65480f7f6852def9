package main

import (
	"trafficalert/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the subscriber registry tables.
func main() {
	models := []any{
		model.SubscriberModel{},
		model.PollCursorModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
