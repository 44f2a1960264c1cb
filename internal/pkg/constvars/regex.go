package constvars

const (
	RegexPhoneNumber = `^\d{10}$`
)

const (
	CalendarDateLayout = "2006-01-02"
)
