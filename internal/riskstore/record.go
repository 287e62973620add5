package riskstore

// BucketHighRisk is the label the scoring job assigns to the riskiest customers.
const BucketHighRisk = "High Risk"

// Column names of the precomputed risk table.
const (
	ColumnCustomerID = "customer_id"
	ColumnScore      = "risk_score_lr"
	ColumnBucket     = "risk_bucket_lr"
	ColumnDrivers    = "risk_drivers"
)

// RiskRecord is one customer's row of the risk table.
type RiskRecord struct {
	CustomerID string  `json:"customer_id"`
	Score      float64 `json:"risk_score_lr"`
	Bucket     string  `json:"risk_bucket_lr"`
	Drivers    string  `json:"risk_drivers"`
}
