package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"westsiderising.org/timeclock/core"
	"westsiderising.org/timeclock/infrastructure/communication"
	"westsiderising.org/timeclock/infrastructure/filesystem"
	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/timeclock/store"
	"westsiderising.org/timeclock/web/common"
	"westsiderising.org/timeclock/web/handlers/clock"
	"westsiderising.org/timeclock/web/handlers/timesheet"
	"westsiderising.org/timeclock/web/middlewares"
)

func main() {
	r := gin.Default()

	dsn := os.Getenv("DSN")
	fmt.Printf("using DSN: %s\n", dsn)
	db, err := core.ConnectDB(dsn, 10, core.LogLevelWarn)
	if err != nil {
		log.Fatal(err)
	}

	gormStore := store.NewGorm(db)
	if err := gormStore.Migrate(); err != nil {
		log.Fatal(err)
	}

	var notifier timeclock.Notifier
	if os.Getenv("SLACK_BOT_TOKEN") != "" {
		notifier = communication.ConnectSlack()
	}
	engine := timeclock.NewEngine(gormStore, notifier)

	var archive timesheet.Archiver
	if bucket := os.Getenv("REPORT_BUCKET"); bucket != "" {
		archive = filesystem.NewS3(bucket)
	}

	base64Secret := os.Getenv("WESTSIDE_SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/timeclock/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		clock.Register(protected, engine)

		admin := protected.Group("")
		admin.Use(middlewares.RequireRole(core.RoleManager, core.RoleSuperadmin))
		{
			timesheet.Register(admin, engine, archive)

			admin.GET("/employees", func(c *gin.Context) {
				employees, err := core.ListEmployees(db)
				if err != nil {
					c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
					return
				}
				c.JSON(http.StatusOK, common.NewSearchResponse(employees, int64(len(employees))))
			})
		}
	}

	r.Run("0.0.0.0:8090")
}
