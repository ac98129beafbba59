package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: eu-west-3)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// NewAWSConfigFromEnv builds the shared AWS config used by the DynamoDB and
// S3 clients.
func NewAWSConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "eu-west-3")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	// Local stacks do not validate credentials, but the AWS SDK requires
	// them to be present.
	if os.Getenv("DYNAMODB_ENDPOINT") != "" || os.Getenv("S3_ENDPOINT") != "" {
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
