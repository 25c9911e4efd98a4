package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"westsiderising.org/timeclock/core"
	"westsiderising.org/timeclock/infrastructure/communication"
	"westsiderising.org/timeclock/infrastructure/devops"
	"westsiderising.org/timeclock/lambdas/common"
	"westsiderising.org/timeclock/lambdas/unclosed-entries/helper"
	"westsiderising.org/timeclock/timeclock/store"
	"westsiderising.org/timeclock/utils"
)

// HandleRequest runs on a nightly schedule and reminds the superadmin about
// entries opened today that were never clocked out.
func HandleRequest(ctx context.Context, event events.CloudWatchEvent) error {
	db, err := core.ConnectDB(os.Getenv("DSN"), 2, core.LogLevelError)
	if err != nil {
		return err
	}

	now := utils.ChicagoNow()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, utils.Chicago)

	entries, err := store.NewGorm(db).EntriesBetween(ctx, midnight, now, nil)
	if err != nil {
		return err
	}

	var names []string
	for _, entry := range entries {
		if entry.Open() {
			names = append(names, entry.EmployeeName)
		}
	}
	if len(names) == 0 {
		fmt.Printf("[INFO] no unclosed entries\n")
		return nil
	}

	cfg, err := devops.LoadNotifierConfig(ctx)
	if err != nil {
		return err
	}
	message := helper.BuildUnclosedMessage(names, cfg.DashboardURL)

	if err := common.SendEmail(ctx, &common.EmailInfo{
		From:    cfg.FromAddress,
		To:      []string{cfg.SuperadminEmail},
		Subject: "Unclosed Time Entries",
		Text:    message,
	}); err != nil {
		return err
	}

	if os.Getenv("SLACK_BOT_TOKEN") != "" {
		if err := communication.ConnectSlack().Info(message); err != nil {
			fmt.Printf("[ERROR] failed to post to Slack: %v\n", err)
		}
	}

	fmt.Printf("[INFO] unclosed entries notification sent (%d entries)\n", len(names))
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
