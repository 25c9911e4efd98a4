package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"westsiderising.org/timeclock/core"
	"westsiderising.org/timeclock/timeclock/store"
	"westsiderising.org/timeclock/utils"
)

// Seeds the employee table from a CSV export with columns
// id,email,name,role,phone. Existing rows are left untouched.
func main() {
	path := flag.String("file", "employees.csv", "employee CSV file")
	flag.Parse()

	db, err := core.ConnectDB(os.Getenv("DSN"), 2, core.LogLevelInfo)
	if err != nil {
		log.Fatal(err)
	}
	if err := store.NewGorm(db).Migrate(); err != nil {
		log.Fatal(err)
	}

	file, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	rows, err := utils.ParseCSV(file)
	if err != nil {
		log.Fatal(err)
	}

	created := 0
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 4 {
			log.Fatalf("row %d: expected at least 4 columns, got %d", i, len(row))
		}

		employee := core.Employee{
			EmployeeID:  row[0],
			Email:       row[1],
			DisplayName: row[2],
			Role:        row[3],
		}
		if len(row) > 4 && row[4] != "" {
			employee.Phone = utils.Ptr(row[4])
		}

		existing, err := core.FindEmployeeByID(db, employee.EmployeeID)
		if err != nil {
			log.Fatal(err)
		}
		if existing != nil {
			continue
		}

		if err := db.Create(&employee).Error; err != nil {
			log.Fatal(err)
		}
		created++
	}

	fmt.Printf("seeded %d employees\n", created)
}
