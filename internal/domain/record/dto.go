package record

// ListResponse is the full table listing.
type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}
