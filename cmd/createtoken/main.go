package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"westsiderising.org/timeclock/core"
	"westsiderising.org/timeclock/security"
)

func main() {
	employeeID := flag.String("id", "", "employee id")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address")
	role := flag.String("role", core.RoleEmployee, "employee, manager or superadmin")
	expires := flag.Int64("expires", 8*3600, "token lifetime in seconds")
	flag.Parse()

	if *employeeID == "" {
		log.Fatal("-id is required")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		EmployeeID: *employeeID,
		Name:       *name,
		Email:      *email,
		Role:       *role,
	}, os.Getenv("WESTSIDE_SIGNING_SECRET"), *expires)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
