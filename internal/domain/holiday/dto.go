package holiday

type Response struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Year      int    `json:"year"`
	IsFloater bool   `json:"is_floater"`
}

func ToResponse(h Holiday) Response {
	return Response{
		ID:        h.ID,
		Name:      h.Name,
		Date:      h.Date.Format("2006-01-02"),
		Year:      h.Year,
		IsFloater: h.IsFloater,
	}
}

type SyncResult struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}
