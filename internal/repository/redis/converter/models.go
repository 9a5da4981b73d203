package converter

// StatusSummaryRedisModel — закэшированные счётчики статусов владельца.
// Day — день, на который они посчитаны (YYYY-MM-DD).
type StatusSummaryRedisModel struct {
	Day     string `json:"day"`
	Expired int    `json:"expired"`
	Urgent  int    `json:"urgent"`
	Soon    int    `json:"soon"`
	Good    int    `json:"good"`
	Unknown int    `json:"unknown"`
	Total   int    `json:"total"`
}
