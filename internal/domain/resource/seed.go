package resource

// Seed returns the resources the audit store starts with
func Seed() []*Resource {
	return []*Resource{
		{ID: "i-09f1234a", Name: "prod-api-gw", Type: "EC2", Provider: ProviderAWS, MonthlyCost: 450, Status: StatusActive, WasteScore: 5},
		{ID: "i-98b7654c", Name: "dev-sandbox-db", Type: "RDS", Provider: ProviderAWS, MonthlyCost: 120, Status: StatusIdle, WasteScore: 85},
		{ID: "v-11223344", Name: "temp-storage-ebs", Type: "EBS", Provider: ProviderAWS, MonthlyCost: 45, Status: StatusZombie, WasteScore: 100},
		{ID: "az-vm-99", Name: "marketing-frontend", Type: "VM", Provider: ProviderAzure, MonthlyCost: 320, Status: StatusActive, WasteScore: 12},
		{ID: "gcp-bq-01", Name: "analytics-warehouse", Type: "BigQuery", Provider: ProviderGCP, MonthlyCost: 1100, Status: StatusActive, WasteScore: 25},
	}
}

// Discovered returns the batch a completed deep scan appends
func Discovered() []*Resource {
	return []*Resource{
		{ID: "i-af559922", Name: "stale-jenkins-worker", Type: "EC2", Provider: ProviderAWS, MonthlyCost: 412, Status: StatusZombie, WasteScore: 98},
		{ID: "db-temp-bench", Name: "qa-benchmark-db", Type: "RDS", Provider: ProviderAWS, MonthlyCost: 650, Status: StatusIdle, WasteScore: 88},
		{ID: "v-99881122", Name: "unattached-log-disk", Type: "Managed Disk", Provider: ProviderAzure, MonthlyCost: 85, Status: StatusZombie, WasteScore: 100},
	}
}
