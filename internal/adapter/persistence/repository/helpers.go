package repository

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoDB BatchGetItem accepts at most 100 keys per request.
const batchGetLimit = 100

// maxUnprocessedRetries bounds the re-submission of throttled keys.
const maxUnprocessedRetries = 5

var ErrItemNotFound = errors.New("item not found")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return err != nil && errors.As(err, &cfe)
}

// parseAmount reads a stored decimal string; blank or malformed values are zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// chunkIDs drops blanks and duplicates and splits ids into BatchGetItem sized chunks.
func chunkIDs(ids []string, size int) [][]string {
	seen := make(map[string]struct{}, len(ids))
	var chunks [][]string
	var current []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		current = append(current, id)
		if len(current) == size {
			chunks = append(chunks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

func batchGetByID(ctx context.Context, ddb *dynamodb.Client, table string, ids []string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for _, chunk := range chunkIDs(ids, batchGetLimit) {
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, id := range chunk {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		request := map[string]types.KeysAndAttributes{
			table: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return nil, errors.New("dynamodb batch get: unprocessed keys after retries")
			}
			out, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			items = append(items, out.Responses[table]...)
			request = out.UnprocessedKeys
		}
	}
	return items, nil
}
