package types

// Metadata holds the candidate's contact details.
type Metadata struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required"`
	Phone           string   `json:"phone" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	LinkedIn        string   `json:"linkedin,omitempty"`
	GitHub          string   `json:"github,omitempty"`
	Website         string   `json:"website,omitempty"`
	SpokenLanguages []string `json:"spoken_languages,omitempty"`
}

// ExperienceRecord is a single job, internship or competition as written by the candidate.
// Competitions carry Name instead of Company and Title.
type ExperienceRecord struct {
	Company     string `json:"company,omitempty" validate:"required"`
	Title       string `json:"title,omitempty" validate:"required"`
	Name        string `json:"name,omitempty"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Location    string `json:"location,omitempty"`
	Description Lines  `json:"description" validate:"required,min=1"`
	Tags
}

// Experiences groups experience records by the kind of work.
type Experiences struct {
	WorkExperience       []ExperienceRecord `json:"work_experience,omitempty"`
	InternshipExperience []ExperienceRecord `json:"internship_experience,omitempty"`
	Competitions         []ExperienceRecord `json:"competitions,omitempty"`
}

// EducationRecord is a single school or program.
type EducationRecord struct {
	School    string   `json:"school" validate:"required"`
	Degree    string   `json:"degree" validate:"required"`
	StartDate string   `json:"start_date" validate:"required"`
	EndDate   string   `json:"end_date" validate:"required"`
	Grade     Text     `json:"grade,omitempty"`
	Courses   []string `json:"courses,omitempty"`
}

// Education groups education records by level.
type Education struct {
	UniversityEducation []EducationRecord `json:"university_education,omitempty"`
	HighSchoolEducation []EducationRecord `json:"high_school_education,omitempty"`
	OtherEducation      []EducationRecord `json:"other_education,omitempty"`
}

// All returns every education record, university first.
func (e Education) All() []EducationRecord {
	all := make([]EducationRecord, 0, len(e.UniversityEducation)+len(e.HighSchoolEducation)+len(e.OtherEducation))
	all = append(all, e.UniversityEducation...)
	all = append(all, e.HighSchoolEducation...)
	return append(all, e.OtherEducation...)
}

// ProjectRecord is a single side project.
type ProjectRecord struct {
	Name        string `json:"name" validate:"required"`
	Description Text   `json:"description" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Tags
}

// Projects wraps the project list as stored on disk.
type Projects struct {
	Projects []ProjectRecord `json:"projects"`
}

// CandidateRecords is everything known about a candidate before any ranking or fitting.
type CandidateRecords struct {
	Metadata    Metadata    `json:"metadata"`
	Experiences Experiences `json:"experiences"`
	Education   Education   `json:"education"`
	Projects    Projects    `json:"projects"`
}
