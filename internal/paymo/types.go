package paymo

// User is the authenticated Paymo account.
type User struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

// Client is a customer that projects are billed to.
type Client struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// Project is a billable project belonging to a client.
type Project struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	ClientID  uint64 `json:"client_id"`
	Active    bool   `json:"active"`
	Billable  bool   `json:"billable"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// Task is a billable unit of work within a project. Hour log entries are
// ultimately attributed to tasks.
type Task struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	ProjectID uint64 `json:"project_id"`
	Complete  bool   `json:"complete"`
}

// TimeEntry is one logged unit of time as the server stores it.
//
// Entries created through the bulk API carry a Date; entries timed manually
// in the Paymo UI carry StartTime/EndTime instead and no Date. The sync
// engine never touches the latter kind.
type TimeEntry struct {
	ID          uint64  `json:"id"`
	TaskID      uint64  `json:"task_id"`
	UserID      uint64  `json:"user_id"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Duration    uint32  `json:"duration"`
	Description string  `json:"description"`
}
