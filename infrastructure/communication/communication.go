package communication

import (
	"context"
	"fmt"
	"os"

	"github.com/slack-go/slack"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/utils"
)

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	infoCh := os.Getenv("SLACK_INFO_CHANNEL")
	errorCh := os.Getenv("SLACK_ERROR_CHANNEL")

	return NewSlack(token, SlackOption{InfoChannelID: infoCh, ErrorChannelID: errorCh})
}

func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (this *Slack) Info(message string) error {
	return this.postMessage(this.options.InfoChannelID, message)
}

func (this *Slack) Error(message string) error {
	return this.postMessage(this.options.ErrorChannelID, message)
}

// ClockInOccurred posts the clock-in alert to the info channel.
func (this *Slack) ClockInOccurred(_ context.Context, event timeclock.ClockInEvent) error {
	return this.Info(ClockInMessage(event))
}

// ClockInMessage renders the alert body sent whenever an employee clocks in.
func ClockInMessage(event timeclock.ClockInEvent) string {
	at := event.ClockIn.In(utils.Chicago)
	return fmt.Sprintf(`CLOCK IN ALERT

Employee: %s
Time: %s
Date: %s

View timesheets at:
westsiderising.org/time-clock.html`,
		event.EmployeeName,
		utils.FormatClockTime(at),
		at.Format("Mon, Jan 2"))
}
