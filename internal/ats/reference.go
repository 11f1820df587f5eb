package ats

import "strings"

// Reference is the curated read-only dataset the scorer consults: stop words,
// technical skills, degree and seniority vocabulary, section header synonyms,
// and a location gazetteer. It is built once at process start and is safe for
// unsynchronized concurrent reads.
type Reference struct {
	stopWords      map[string]struct{}
	skills         map[string]struct{} // normalized phrases
	degreeTerms    map[string]struct{} // stems
	seniorityTerms map[string]struct{} // stems
	sectionHeaders map[string][]string // section name -> lowercase synonyms
	cities         map[string]struct{} // lowercase city names
	regions        map[string]struct{} // lowercase state/province codes
}

// NewReference builds a Reference from raw word lists. Skills, degree terms,
// and seniority terms are normalized with the same pipeline keywords go
// through, so lookups compare like with like.
func NewReference(stopWords, skills, degreeTerms, seniorityTerms []string, sectionHeaders map[string][]string, cities, regions []string) *Reference {
	r := &Reference{
		stopWords:      make(map[string]struct{}, len(stopWords)),
		skills:         make(map[string]struct{}, len(skills)),
		degreeTerms:    make(map[string]struct{}, len(degreeTerms)),
		seniorityTerms: make(map[string]struct{}, len(seniorityTerms)),
		sectionHeaders: sectionHeaders,
		cities:         make(map[string]struct{}, len(cities)),
		regions:        make(map[string]struct{}, len(regions)),
	}
	for _, w := range stopWords {
		r.stopWords[strings.ToLower(w)] = struct{}{}
	}
	for _, s := range skills {
		if n := normalizePhrase(s, r); n != "" {
			r.skills[n] = struct{}{}
		}
	}
	for _, d := range degreeTerms {
		r.degreeTerms[stemToken(strings.ToLower(d))] = struct{}{}
	}
	for _, s := range seniorityTerms {
		r.seniorityTerms[stemToken(strings.ToLower(s))] = struct{}{}
	}
	for _, c := range cities {
		r.cities[strings.ToLower(c)] = struct{}{}
	}
	for _, p := range regions {
		r.regions[strings.ToLower(p)] = struct{}{}
	}
	return r
}

func (r *Reference) IsStopWord(w string) bool {
	_, ok := r.stopWords[w]
	return ok
}

func (r *Reference) IsSkill(normalizedPhrase string) bool {
	_, ok := r.skills[normalizedPhrase]
	return ok
}

func (r *Reference) isDegreeTerm(stem string) bool {
	_, ok := r.degreeTerms[stem]
	return ok
}

func (r *Reference) isSeniorityTerm(stem string) bool {
	_, ok := r.seniorityTerms[stem]
	return ok
}

func (r *Reference) isKnownCity(city string) bool {
	_, ok := r.cities[strings.ToLower(city)]
	return ok
}

func (r *Reference) isKnownRegion(code string) bool {
	_, ok := r.regions[strings.ToLower(code)]
	return ok
}

// DefaultReference returns the built-in curated dataset.
func DefaultReference() *Reference {
	return NewReference(defaultStopWords, defaultSkills, defaultDegreeTerms, defaultSeniorityTerms, defaultSectionHeaders, defaultCities, defaultRegions)
}

var defaultStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "can", "could", "did", "do", "does", "doing",
	"down", "during", "each", "few", "for", "from", "further", "had", "has",
	"have", "having", "he", "her", "here", "hers", "him", "his", "how", "i", "if",
	"in", "into", "is", "it", "its", "just", "me", "more", "most", "my", "no",
	"nor", "not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
	"ours", "out", "over", "own", "per", "same", "she", "should", "so", "some",
	"such", "than", "that", "the", "their", "theirs", "them", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under", "until",
	"up", "us", "very", "was", "we", "were", "what", "when", "where", "which",
	"while", "who", "whom", "why", "will", "with", "would", "you", "your",
	"yours", "etc", "also", "may", "must", "shall", "via",
}

var defaultSkills = []string{
	// Languages
	"python", "java", "javascript", "typescript", "golang", "go", "rust", "c++",
	"c#", "ruby", "php", "swift", "kotlin", "scala", "sql", "html", "css", "bash",
	"r", "matlab", "perl",
	// Frameworks and runtimes
	"react", "angular", "vue", "nodejs", "node", "django", "flask", "fastapi",
	"spring", "spring boot", "rails", "express", "nextjs", "dotnet", "laravel",
	"gin", "fiber",
	// Data
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
	"kafka", "rabbitmq", "cassandra", "dynamodb", "sqlite", "oracle", "snowflake",
	"spark", "hadoop", "airflow", "dbt", "etl", "data pipeline", "data modeling",
	"data warehouse",
	// Cloud and infra
	"aws", "azure", "gcp", "google cloud", "kubernetes", "docker", "terraform",
	"ansible", "jenkins", "ci cd", "cicd", "devops", "linux", "nginx", "helm",
	"prometheus", "grafana", "serverless", "lambda", "microservices",
	// APIs and protocols
	"rest", "rest api", "graphql", "grpc", "websocket", "oauth", "json", "soap",
	// ML and analytics
	"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn",
	"nlp", "computer vision", "pandas", "numpy", "data analysis", "data science",
	"statistics", "tableau", "power bi", "excel", "llm",
	// Practices and tooling
	"git", "agile", "scrum", "kanban", "jira", "tdd", "unit testing",
	"integration testing", "code review", "design patterns", "system design",
	"distributed systems", "security", "performance tuning", "monitoring",
	"project management", "stakeholder management", "leadership", "mentoring",
	"communication", "problem solving",
}

var defaultDegreeTerms = []string{
	"bachelor", "bachelors", "bsc", "bs", "ba", "beng", "master", "masters",
	"msc", "ms", "ma", "mba", "meng", "phd", "doctorate", "degree", "diploma",
	"undergraduate", "graduate", "postgraduate",
}

var defaultSeniorityTerms = []string{
	"senior", "junior", "lead", "principal", "staff", "intern", "internship",
	"entry", "entry-level", "mid-level", "midlevel", "manager", "director",
	"head", "architect", "experienced", "expert",
}

// defaultSectionHeaders mirrors the section synonym groups ATS parsers look
// for when they segment a resume.
var defaultSectionHeaders = map[string][]string{
	"experience": {
		"experience", "work experience", "professional experience", "employment",
		"work history", "career history", "professional background",
	},
	"education": {
		"education", "academic background", "qualifications", "degrees",
		"certifications", "academic credentials",
	},
	"skills": {
		"skills", "technical skills", "core competencies", "expertise",
		"proficiencies", "competencies",
	},
	"summary": {
		"summary", "professional summary", "objective", "profile",
		"career objective", "personal statement",
	},
}

var defaultCities = []string{
	// Canada
	"toronto", "ottawa", "mississauga", "hamilton", "brampton", "london",
	"kitchener", "waterloo", "windsor", "markham", "vaughan", "montreal",
	"quebec city", "laval", "sherbrooke", "vancouver", "burnaby", "surrey",
	"victoria", "richmond", "calgary", "edmonton", "red deer", "lethbridge",
	"winnipeg", "regina", "saskatoon", "halifax", "fredericton", "moncton",
	"st john's", "charlottetown", "whitehorse", "yellowknife", "iqaluit",
	// United States
	"new york", "san francisco", "seattle", "austin", "boston", "chicago",
	"los angeles", "denver", "atlanta", "dallas", "houston", "portland",
	"san diego", "san jose", "miami", "philadelphia", "phoenix", "washington",
	"minneapolis", "detroit", "raleigh", "pittsburgh", "salt lake city",
}

var defaultRegions = []string{
	// Canadian provinces and territories
	"on", "qc", "bc", "ab", "mb", "ns", "nb", "nl", "pe", "sk", "nu", "yt", "nt",
	"ontario", "quebec", "british columbia", "alberta", "manitoba",
	// US states (postal codes)
	"al", "ak", "az", "ar", "ca", "co", "ct", "de", "fl", "ga", "hi", "id", "il",
	"in", "ia", "ks", "ky", "la", "me", "md", "ma", "mi", "mn", "ms", "mo", "mt",
	"ne", "nv", "nh", "nj", "nm", "ny", "nc", "nd", "oh", "ok", "or", "pa", "ri",
	"sc", "sd", "tn", "tx", "ut", "vt", "va", "wa", "wv", "wi", "wy", "dc",
	"california", "texas", "washington", "new york",
}
