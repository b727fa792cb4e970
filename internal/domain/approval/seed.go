package approval

// Seed returns the requests the approvals view starts with
func Seed() []*Request {
	return []*Request{
		{
			ID:            "apr-101",
			Requester:     "John Doe (DevOps)",
			Description:   "Spin up p3.8xlarge GPU cluster for ML training cycle.",
			EstimatedCost: 2400,
			Type:          TypeResourceProvision,
			Status:        StatusPending,
		},
		{
			ID:          "apr-102",
			Requester:   "Jane Smith (SecOps)",
			Description: "Temporary bypass of SSH port restrictions for debugging session.",
			Type:        TypeSecurityException,
			Status:      StatusPending,
		},
	}
}
