package alert

import "time"

// Seed returns the alerts the security view starts with
func Seed() []*Alert {
	return []*Alert{
		{
			ID:             "sec-001",
			Severity:       SeverityCritical,
			Title:          "S3 Bucket Public Access",
			Description:    `Bucket "customer-docs-backup" was found with public READ permissions.`,
			Timestamp:      time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
			AutoRemediated: true,
			Status:         StatusFixed,
		},
		{
			ID:          "sec-002",
			Severity:    SeverityHigh,
			Title:       "Unencrypted EBS Volume",
			Description: `Volume "vol-0a1b2c3d" in us-east-1 is not encrypted at rest.`,
			Timestamp:   time.Date(2024, 5, 20, 15, 15, 0, 0, time.UTC),
			Status:      StatusOpen,
		},
		{
			ID:          "sec-003",
			Severity:    SeverityMedium,
			Title:       "Idle IAM Access Key",
			Description: `User "deploy-bot" has an access key older than 90 days that has not been used.`,
			Timestamp:   time.Date(2024, 5, 19, 9, 0, 0, 0, time.UTC),
			Status:      StatusOpen,
		},
	}
}
