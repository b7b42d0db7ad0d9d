package thresholds

// ThresholdRequest represents the query parameters of GET /v1/thresholds.
type ThresholdRequest struct {
	Groups *int  `form:"groups"` // default: partition.default_groups
	Cache  *bool `form:"cache"`  // default: partition.cache
}

// RangeRequest represents the query parameters shared by the query-building
// and key-scanning endpoints.
type RangeRequest struct {
	Groups     *int   `form:"groups"`
	Cache      *bool  `form:"cache"`
	Table      string `form:"table" binding:"required"`
	HashColumn string `form:"hash_column" binding:"required"`
	KeyColumn  string `form:"key_column" binding:"required"`
	FoldCase   *bool  `form:"fold_case"` // default: query.fold_case
	Limit      *int   `form:"limit"`     // default: query.default_limit
}

// RangeStatement is the SQL that selects the keys of one partition.
type RangeStatement struct {
	Index int     `json:"index"`
	Min   *string `json:"min"`
	Max   string  `json:"max"`
	SQL   string  `json:"sql"`
	Args  []any   `json:"args"`
}

// QueryResponse is the response body of GET /v1/thresholds/queries.
type QueryResponse struct {
	Groups     int              `json:"groups"`
	Table      string           `json:"table"`
	Statements []RangeStatement `json:"statements"`
}

// KeysResponse is the response body of GET /v1/partitions/:index/keys.
type KeysResponse struct {
	Groups int      `json:"groups"`
	Index  int      `json:"index"`
	Min    *string  `json:"min"`
	Max    string   `json:"max"`
	Limit  int      `json:"limit"`
	Keys   []string `json:"keys"`
}
