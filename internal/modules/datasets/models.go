package datasets

// Info is the summary entry returned by the dataset listing.
type Info struct {
	Name        string            `json:"name"`
	DateRange   map[string]string `json:"date_range"`
	RecordCount int               `json:"record_count"`
}

// ListResponse is the payload of GET /api/datasets/list.
type ListResponse struct {
	Datasets   []Info `json:"datasets"`
	TotalCount int    `json:"total_count"`
}

// MetadataResponse is the payload of GET /api/datasets/{name}/metadata.
// It carries everything a frontend needs to populate strategy form
// dropdowns for the selected dataset.
type MetadataResponse struct {
	Name              string               `json:"name"`
	DateRange         map[string]string    `json:"date_range"`
	AvailableExpiries []string             `json:"available_expiries"`
	AvailableStrikes  map[string][]float64 `json:"available_strikes"`
	RecordCount       int                  `json:"record_count"`
}
