package devops

import (
	"context"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// NotifierConfig holds the alerting contacts, stored as a yaml document in a
// single SSM parameter.
type NotifierConfig struct {
	SuperadminEmail string `yaml:"superadminEmail"`
	SuperadminPhone string `yaml:"superadminPhone"`
	FromAddress     string `yaml:"fromAddress"`
	DashboardURL    string `yaml:"dashboardUrl"`
}

var (
	once     sync.Once
	notifier NotifierConfig
	loadErr  error
)

func LoadNotifierConfig(ctx context.Context) (NotifierConfig, error) {
	once.Do(func() {
		paramName := "timeclock-notifier"

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed NotifierConfig
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		notifier = parsed
	})

	return notifier, loadErr
}
