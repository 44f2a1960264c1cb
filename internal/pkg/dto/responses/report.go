package responses

type ReportRow struct {
	SerialNumber     int    `json:"serialNumber"`
	DoctorID         string `json:"doctorId"`
	DoctorName       string `json:"doctorName"`
	DoctorSpeciality string `json:"doctorSpeciality"`
}

type ReportLink struct {
	URL string `json:"url"`
}

// ReportDownload describes the streamed object; the body is returned
// separately by the usecase.
type ReportDownload struct {
	FileName    string
	ContentType string
	Size        int64
}
