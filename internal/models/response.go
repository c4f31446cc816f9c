package models

import "time"

// ResponseModel is the envelope every JSON endpoint returns.
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Data        any    `json:"data"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

// ListData wraps a paginated row listing.
type ListData struct {
	List         []any `json:"list"`
	Page         int   `json:"page"`
	PageSize     int   `json:"pageSize"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int   `json:"totalRecords"`
}

// EntryData wraps a single record.
type EntryData struct {
	Entry any `json:"entry"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds for
// response envelopes.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

// NewOKResponse wraps data in a 200 envelope.
func NewOKResponse(data any) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// NewEntryResponse wraps a single record in a 200 envelope.
func NewEntryResponse(entry any) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry})
}

// NewListResponse wraps a paginated listing in a 200 envelope.
func NewListResponse(list []any, page, pageSize, totalPages, totalRecords int) ResponseModel {
	if list == nil {
		list = []any{}
	}
	return NewOKResponse(ListData{
		List:         list,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
	})
}
