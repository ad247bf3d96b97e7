package database

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the client shared by the order, catalog and
// vendor repositories.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	endpoint := strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT"))
	log.Printf("[split][database] dynamodb client region=%s endpoint=%q", cfg.Region, endpoint)
	return dynamodb.NewFromConfig(cfg, WithEndpoint(endpoint))
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

// WithEndpoint points the client at a local DynamoDB when endpoint is set.
func WithEndpoint(endpoint string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
