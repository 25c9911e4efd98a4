package main

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gen"
	"gorm.io/gorm"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:      "../../models",
		ModelPkgPath: "models",                                                           // avoid helper functions
		Mode:         gen.WithoutContext | gen.WithDefaultQuery | gen.WithQueryInterface, // generate mode
	})

	g.WithDataTypeMap(map[string]func(gorm.ColumnType) (dataType string){
		"decimal": func(gorm.ColumnType) string {
			return "float64"
		},
	})

	gormdb, _ := gorm.Open(mysql.Open(os.Getenv("DSN")))
	g.UseDB(gormdb)

	g.GenerateAllTable()
	g.ApplyBasic()

	// Generate the code
	g.Execute()
}
