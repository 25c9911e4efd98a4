package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"westsiderising.org/timeclock/infrastructure/devops"
	"westsiderising.org/timeclock/lambdas/clockin-alert/helper"
	"westsiderising.org/timeclock/lambdas/common"
	timeclock "westsiderising.org/timeclock/timeclock/core"
)

// HandleRequest forwards clock-in events, published to SNS by the web tier,
// to the superadmin as an email alert.
func HandleRequest(ctx context.Context, event events.SNSEvent) error {
	cfg, err := devops.LoadNotifierConfig(ctx)
	if err != nil {
		return err
	}

	hasError := false
	for _, record := range event.Records {
		var clockIn timeclock.ClockInEvent
		if err := json.Unmarshal([]byte(record.SNS.Message), &clockIn); err != nil {
			fmt.Printf("[ERROR] failed to parse clock-in event: %v\n", err)
			hasError = true
			continue
		}

		err := common.SendEmail(ctx, &common.EmailInfo{
			From:    cfg.FromAddress,
			To:      []string{cfg.SuperadminEmail},
			Subject: "Clock In Alert",
			Text:    helper.BuildAlertMessage(clockIn, cfg.DashboardURL),
		})
		if err != nil {
			fmt.Printf("[ERROR] failed to send alert for %s: %v\n", clockIn.EmployeeID, err)
			hasError = true
			continue
		}
		fmt.Printf("[INFO] alert sent for %s\n", clockIn.EmployeeName)
	}

	if hasError {
		return fmt.Errorf("one or more alerts failed")
	}
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
