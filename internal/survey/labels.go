package survey

// Labels maps raw survey values (or raw column headers) to display names.
type Labels map[string]string

// Apply maps every value through l. Values without an entry become "",
// which the charts treat as missing.
func (l Labels) Apply(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = l[v]
	}
	return out
}

// Column names used after renaming.
const (
	ColTimestamp   = "Timestamp"
	ColTimezone    = "Timezone"
	ColWork        = "Work"
	ColCountry     = "Country"
	ColExperience  = "Experience"
	ColSatUpdate   = "Sat_update"
	ColSatMaterial = "Sat_material"
	ColInterests   = "Interests"
	ColHowFound    = "How_found"
	ColRecommend   = "Recommend"
	ColWhy         = "Why"
	ColAge         = "Age"
)

// DefaultColumnNames maps the questionnaire headers of the 2020 channel poll
// to short column names.
var DefaultColumnNames = Labels{
	"Your timezone (we need that to schedule post timing better)":                  ColTimezone,
	"Work status":                                                                  ColWork,
	"What is your residence country (where are you from?)":                         ColCountry,
	"Data Science expertise  level":                                                ColExperience,
	"Are you satisfied with channel update frequency?":                             ColSatUpdate,
	"Are you satisfied with channel's material complexity?":                        ColSatMaterial,
	"What field are you interested in (multiple choices are possible)":             ColInterests,
	"How did you find out about the channel?":                                      ColHowFound,
	"How likely are you going to recommend a channel to your friend or colleague?": ColRecommend,
	"Whatâ€™s the main reason for your score? *":                    ColWhy,
	"What’s the main reason for your score? *":                                ColWhy,
}

var DefaultWorkLabels = Labels{
	"Employed remotely":                  "Employed remotely",
	"Self-employed (freelance)":          "Freelancer",
	"Student + part time job":            "Worker student",
	"Self-employed (co-founder / owner)": "Self-employed",
	"Student":                            "Student",
	"Unemployed":                         "Unemployed",
	"Employed":                           "Employed",
	"Student + part time remote job":     "Remote worker student",
}

var DefaultSatisfactionLabels = Labels{
	"Need more beginners' stuff":                   "Too complex",
	"Need more specific and complicated materials": "Too simple",
	"It's all ok":                                  "Perfect",
}

// DefaultAgeOrder is the ordinal order of the Age buckets.
var DefaultAgeOrder = []string{"18-", "18-24", "25-30", "31-42", "42+"}
