package flag

// Job carries the worker CLI arguments into a job handler.
type Job struct {
	JobName   string
	Version   string
	Date      string
	CompanyID int64
	DateFrom  string
	DateTo    string
	FileName  string
}
