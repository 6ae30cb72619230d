package content

// Searchable is implemented by every listing record.
type Searchable interface {
	Key() string
	SearchTitle() string
	SearchCategory() string
	SearchTags() []string
}

// Job is an open position on the careers page.
type Job struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Department string   `yaml:"department"`
	Location   string   `yaml:"location"`
	Schedule   string   `yaml:"schedule"`
	Summary    string   `yaml:"summary"`
	Duties     []string `yaml:"duties"`
	Tags       []string `yaml:"tags"`
}

func (j Job) Key() string            { return j.ID }
func (j Job) SearchTitle() string    { return j.Title }
func (j Job) SearchCategory() string { return j.Department }
func (j Job) SearchTags() []string   { return j.Tags }

// Location is a hospital or clinic site.
type Location struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Region    string   `yaml:"region"`
	Address   string   `yaml:"address"`
	Phone     string   `yaml:"phone"`
	Hours     string   `yaml:"hours"`
	Emergency bool     `yaml:"emergency"`
	Services  []string `yaml:"services"`
}

func (l Location) Key() string            { return l.ID }
func (l Location) SearchTitle() string    { return l.Name }
func (l Location) SearchCategory() string { return l.Region }
func (l Location) SearchTags() []string   { return l.Services }

// FAQ is a help-center question.
type FAQ struct {
	ID       string   `yaml:"id"`
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

func (f FAQ) Key() string            { return f.ID }
func (f FAQ) SearchTitle() string    { return f.Question }
func (f FAQ) SearchCategory() string { return f.Category }
func (f FAQ) SearchTags() []string   { return f.Tags }

// Audit is a published quality and safety result.
type Audit struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Period   string   `yaml:"period"`
	Score    string   `yaml:"score"`
	Summary  string   `yaml:"summary"`
	Tags     []string `yaml:"tags"`
}

func (a Audit) Key() string            { return a.ID }
func (a Audit) SearchTitle() string    { return a.Title }
func (a Audit) SearchCategory() string { return a.Category }
func (a Audit) SearchTags() []string   { return a.Tags }

// Post is a research or news article.
type Post struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Date     string   `yaml:"date"`
	Authors  []string `yaml:"authors"`
	Summary  string   `yaml:"summary"`
	Body     string   `yaml:"body"`
	Tags     []string `yaml:"tags"`
}

func (p Post) Key() string            { return p.ID }
func (p Post) SearchTitle() string    { return p.Title }
func (p Post) SearchCategory() string { return p.Category }
func (p Post) SearchTags() []string   { return p.Tags }

// Catalog is the full set of listing records.
type Catalog struct {
	Jobs      []Job
	Locations []Location
	FAQs      []FAQ
	Audits    []Audit
	Research  []Post
	News      []Post
}

// Counts reports how many records each collection holds, keyed by file name.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		FileJobs:      len(c.Jobs),
		FileLocations: len(c.Locations),
		FileFAQs:      len(c.FAQs),
		FileAudits:    len(c.Audits),
		FileResearch:  len(c.Research),
		FileNews:      len(c.News),
	}
}
