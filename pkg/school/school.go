package school

// Record is one school as stored in its per-school JSON document.
// Only id and basic_info.name are required. Every other section is
// optional and stays nil when the document omits it, so sparse records
// survive the full load/score/encode round trip without fabricating data.
type Record struct {
	ID                  string               `json:"id" yaml:"id"`
	BasicInfo           BasicInfo            `json:"basic_info" yaml:"basic_info"`
	AcademicPerformance *AcademicPerformance `json:"academic_performance,omitempty" yaml:"academic_performance,omitempty"`
	Location            *Location            `json:"location,omitempty" yaml:"location,omitempty"`
	Facilities          *Facilities          `json:"facilities,omitempty" yaml:"facilities,omitempty"`
	StudentSupport      *StudentSupport      `json:"student_support,omitempty" yaml:"student_support,omitempty"`
	Reviews             *Reviews             `json:"reviews_reputation,omitempty" yaml:"reviews_reputation,omitempty"`
	PracticalInfo       *PracticalInfo       `json:"practical_info,omitempty" yaml:"practical_info,omitempty"`
	AIAnalysis          *AIAnalysis          `json:"ai_analysis,omitempty" yaml:"ai_analysis,omitempty"`
	Metadata            *Metadata            `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type BasicInfo struct {
	Name                 string      `json:"name" yaml:"name"`
	Address              string      `json:"address,omitempty" yaml:"address,omitempty"`
	PostalCode           string      `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	City                 string      `json:"city,omitempty" yaml:"city,omitempty"`
	Types                []string    `json:"type,omitempty" yaml:"type,omitempty"`
	ReligiousAffiliation string      `json:"religious_affiliation,omitempty" yaml:"religious_affiliation,omitempty"`
	Enrollment           *Enrollment `json:"enrollment,omitempty" yaml:"enrollment,omitempty"`
	Contact              *Contact    `json:"contact,omitempty" yaml:"contact,omitempty"`
}

type Enrollment struct {
	Total *int `json:"total,omitempty" yaml:"total,omitempty"`
	Year  *int `json:"year,omitempty" yaml:"year,omitempty"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
}

type AcademicPerformance struct {
	ExamScores       map[string]*ExamScore `json:"exam_scores,omitempty" yaml:"exam_scores,omitempty"`
	SpecialPrograms  []string              `json:"special_programs,omitempty" yaml:"special_programs,omitempty"`
	Extracurriculars []string              `json:"extracurricular_activities,omitempty" yaml:"extracurricular_activities,omitempty"`
}

// ExamScore holds the national exam results for one education level
// (vmbo, havo, vwo). The field names carry the exam year the dataset
// was built from.
type ExamScore struct {
	PassRate       *float64 `json:"pass_rate_2024_2025,omitempty" yaml:"pass_rate_2024_2025,omitempty"`
	Passed         *int     `json:"passed_2024_2025,omitempty" yaml:"passed_2024_2025,omitempty"`
	Candidates     *int     `json:"candidates_2024_2025,omitempty" yaml:"candidates_2024_2025,omitempty"`
	AvgPassRate5yr *float64 `json:"average_pass_rate_5yr,omitempty" yaml:"average_pass_rate_5yr,omitempty"`
}

type Location struct {
	Coordinates     *Coordinates     `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	BikeAccess      *Commute         `json:"bike_accessibility,omitempty" yaml:"bike_accessibility,omitempty"`
	PublicTransport *PublicTransport `json:"public_transport,omitempty" yaml:"public_transport,omitempty"`
}

type Coordinates struct {
	Lat *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty" yaml:"lon,omitempty"`
}

// Commute describes one leg from the configured home address. The same
// shape serves bike routes (route_quality, distance_text) and transit
// routes (transfers).
type Commute struct {
	DurationMinutes *float64 `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	DurationText    string   `json:"duration_text,omitempty" yaml:"duration_text,omitempty"`
	DistanceText    string   `json:"distance_text,omitempty" yaml:"distance_text,omitempty"`
	RouteQuality    string   `json:"route_quality,omitempty" yaml:"route_quality,omitempty"`
	Transfers       *int     `json:"transfers,omitempty" yaml:"transfers,omitempty"`
}

type PublicTransport struct {
	CommuteFromHome *Commute `json:"commute_from_home,omitempty" yaml:"commute_from_home,omitempty"`
}

type Facilities struct {
	Technology       *Technology `json:"technology,omitempty" yaml:"technology,omitempty"`
	SportsFacilities []string    `json:"sports_facilities,omitempty" yaml:"sports_facilities,omitempty"`
	ClassroomsLabs   string      `json:"classrooms_labs_quality,omitempty" yaml:"classrooms_labs_quality,omitempty"`
	// Library is free-form in the source data (object, string, or bool).
	Library any `json:"library,omitempty" yaml:"library,omitempty"`
}

type Technology struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type StudentSupport struct {
	AfterSchoolPrograms []string `json:"after_school_programs,omitempty" yaml:"after_school_programs,omitempty"`
	SpecialEducation    []string `json:"special_education,omitempty" yaml:"special_education,omitempty"`
}

type Reviews struct {
	ParentReviews  []Review `json:"parent_reviews,omitempty" yaml:"parent_reviews,omitempty"`
	StudentReviews []Review `json:"student_reviews,omitempty" yaml:"student_reviews,omitempty"`
}

// Review is one aggregated satisfaction entry. Ratings are on a 0-10
// scale. Date (YYYY-MM-DD) or year anchor the review in time; entries
// carrying neither sort after dated ones.
type Review struct {
	Date           string   `json:"date,omitempty" yaml:"date,omitempty"`
	Year           *int     `json:"year,omitempty" yaml:"year,omitempty"`
	Source         string   `json:"source,omitempty" yaml:"source,omitempty"`
	OverallRating  *float64 `json:"overall_rating,omitempty" yaml:"overall_rating,omitempty"`
	WouldRecommend *float64 `json:"would_recommend,omitempty" yaml:"would_recommend,omitempty"`
	VoiceMatters   *float64 `json:"voice_matters,omitempty" yaml:"voice_matters,omitempty"`
	Comment        string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

type PracticalInfo struct {
	OpenDays []OpenDay `json:"open_days,omitempty" yaml:"open_days,omitempty"`
	Links    []string  `json:"links,omitempty" yaml:"links,omitempty"`
}

type OpenDay struct {
	Date                 string `json:"date,omitempty" yaml:"date,omitempty"`
	Time                 string `json:"time,omitempty" yaml:"time,omitempty"`
	Type                 string `json:"type,omitempty" yaml:"type,omitempty"`
	RegistrationRequired bool   `json:"registration_required,omitempty" yaml:"registration_required,omitempty"`
}

type AIAnalysis struct {
	Summary        string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Strengths      []string `json:"strengths,omitempty" yaml:"strengths,omitempty"`
	Considerations []string `json:"considerations,omitempty" yaml:"considerations,omitempty"`
	BestFitFor     []string `json:"best_fit_for,omitempty" yaml:"best_fit_for,omitempty"`
}

type Metadata struct {
	DataSources  []string `json:"data_sources,omitempty" yaml:"data_sources,omitempty"`
	LastUpdated  string   `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
	Completeness *float64 `json:"completeness_score,omitempty" yaml:"completeness_score,omitempty"`
}

// Name returns the school name.
func (r *Record) Name() string {
	return r.BasicInfo.Name
}

// City returns the school city, empty when unknown.
func (r *Record) City() string {
	return r.BasicInfo.City
}

// Types returns the education levels offered (e.g. HAVO, VWO, Gymnasium).
func (r *Record) Types() []string {
	return r.BasicInfo.Types
}

// Website returns the school website URL, empty when unknown.
func (r *Record) Website() string {
	if r.BasicInfo.Contact == nil {
		return ""
	}
	return r.BasicInfo.Contact.Website
}

// EnrollmentTotal returns the student count, nil when not recorded.
func (r *Record) EnrollmentTotal() *int {
	if r.BasicInfo.Enrollment == nil {
		return nil
	}
	return r.BasicInfo.Enrollment.Total
}

// BikeMinutes returns the bike commute duration, nil when not recorded.
func (r *Record) BikeMinutes() *float64 {
	if r.Location == nil || r.Location.BikeAccess == nil {
		return nil
	}
	return r.Location.BikeAccess.DurationMinutes
}

// TransitMinutes returns the public transport commute duration, nil
// when not recorded.
func (r *Record) TransitMinutes() *float64 {
	if r.Location == nil || r.Location.PublicTransport == nil || r.Location.PublicTransport.CommuteFromHome == nil {
		return nil
	}
	return r.Location.PublicTransport.CommuteFromHome.DurationMinutes
}

// ExamScore returns the exam results for one education level, nil when
// the level is not offered or not recorded.
func (r *Record) ExamScore(level string) *ExamScore {
	if r.AcademicPerformance == nil {
		return nil
	}
	return r.AcademicPerformance.ExamScores[level]
}

// ParentReviews returns the parent review list, most recent first.
func (r *Record) ParentReviews() []Review {
	if r.Reviews == nil {
		return nil
	}
	return r.Reviews.ParentReviews
}

// StudentReviews returns the student review list, most recent first.
func (r *Record) StudentReviews() []Review {
	if r.Reviews == nil {
		return nil
	}
	return r.Reviews.StudentReviews
}

// OpenDays returns the published open day events.
func (r *Record) OpenDays() []OpenDay {
	if r.PracticalInfo == nil {
		return nil
	}
	return r.PracticalInfo.OpenDays
}
