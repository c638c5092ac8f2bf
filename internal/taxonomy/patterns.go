package taxonomy

// Signal is one lexical pattern contributing weight to a category.
type Signal struct {
	Phrase string  `yaml:"phrase"`
	Weight float64 `yaml:"weight"`
}

// PatternTable is the immutable, data-driven rule set the matcher
// evaluates. Built once at startup, never mutated afterwards.
type PatternTable struct {
	Signals        map[Category][]Signal
	Negators       []string
	ContinuityCues []string
}

// diagnosis claim detection: prefix x condition pairs catch generated text
// that asserts a condition ("you have arthritis") without flagging benign
// phrases like "do you have tips".
var claimPrefixes = []string{
	"you have",
	"you may have",
	"you might have",
	"you likely have",
	"you probably have",
	"sounds like",
	"it sounds like",
	"you are suffering from",
	"this is likely",
	"it is probably",
}

var conditionTerms = []string{
	"arthritis",
	"diabetes",
	"dementia",
	"alzheimer's",
	"pneumonia",
	"an infection",
	"a stroke",
	"depression",
	"hypertension",
	"high blood pressure",
	"parkinson's",
	"osteoporosis",
	"anemia",
	"angina",
	"a urinary tract infection",
}

// DefaultPatternTable returns the built-in rule set. An external YAML file
// can extend or override it via Load.
func DefaultPatternTable() *PatternTable {
	t := &PatternTable{
		Signals: map[Category][]Signal{
			CategoryGeneralWellness: {
				{Phrase: "ache", Weight: 1.0},
				{Phrase: "aches", Weight: 1.0},
				{Phrase: "sore", Weight: 1.0},
				{Phrase: "stiff", Weight: 1.0},
				{Phrase: "headache", Weight: 1.0},
				{Phrase: "back pain", Weight: 1.0},
				{Phrase: "joint pain", Weight: 1.0},
				{Phrase: "exercise", Weight: 1.0},
				{Phrase: "stretching", Weight: 1.0},
				{Phrase: "walking", Weight: 0.8},
				{Phrase: "diet", Weight: 0.8},
				{Phrase: "daily routine", Weight: 1.0},
				{Phrase: "routine", Weight: 0.6},
				{Phrase: "energy", Weight: 0.8},
			},
			CategorySleep: {
				{Phrase: "sleep", Weight: 1.0},
				{Phrase: "sleeping", Weight: 1.0},
				{Phrase: "insomnia", Weight: 1.5},
				{Phrase: "trouble sleeping", Weight: 1.5},
				{Phrase: "wake up at night", Weight: 1.5},
				{Phrase: "nap", Weight: 0.8},
				{Phrase: "tired all the time", Weight: 1.0},
			},
			CategoryMood: {
				{Phrase: "lonely", Weight: 1.2},
				{Phrase: "loneliness", Weight: 1.2},
				{Phrase: "sad", Weight: 1.0},
				{Phrase: "feeling down", Weight: 1.2},
				{Phrase: "anxious", Weight: 1.0},
				{Phrase: "worried", Weight: 0.8},
				{Phrase: "mood", Weight: 1.0},
				{Phrase: "grief", Weight: 1.0},
			},
			CategorySafety: {
				{Phrase: "falls", Weight: 1.0},
				{Phrase: "falling", Weight: 1.0},
				{Phrase: "afraid of falling", Weight: 1.5},
				{Phrase: "slippery", Weight: 1.0},
				{Phrase: "grab bar", Weight: 1.2},
				{Phrase: "grab bars", Weight: 1.2},
				{Phrase: "tripping", Weight: 1.0},
				{Phrase: "balance", Weight: 1.0},
				{Phrase: "safe at home", Weight: 1.2},
				{Phrase: "home safety", Weight: 1.2},
			},
			CategoryMedicationOrg: {
				{Phrase: "medication", Weight: 1.0},
				{Phrase: "medications", Weight: 1.0},
				{Phrase: "medicine", Weight: 1.0},
				{Phrase: "pill", Weight: 0.8},
				{Phrase: "pills", Weight: 0.8},
				{Phrase: "pillbox", Weight: 1.5},
				{Phrase: "pill box", Weight: 1.5},
				{Phrase: "pill organizer", Weight: 1.5},
				{Phrase: "medication schedule", Weight: 1.5},
				{Phrase: "remind me to take", Weight: 1.5},
				{Phrase: "keep track of my medication", Weight: 1.5},
			},
			CategoryEmergency: {
				// Conservative, recall-biased set. A missed escalation is
				// categorically worse than an unnecessary one.
				{Phrase: "chest pain", Weight: 3.0},
				{Phrase: "trouble breathing", Weight: 3.0},
				{Phrase: "difficulty breathing", Weight: 3.0},
				{Phrase: "severe pain", Weight: 2.5},
				{Phrase: "sudden weakness", Weight: 2.5},
				{Phrase: "face drooping", Weight: 3.0},
				{Phrase: "slurred speech", Weight: 3.0},
				{Phrase: "can't move", Weight: 2.5},
				{Phrase: "cannot move", Weight: 2.5},
				{Phrase: "can't get up", Weight: 2.5},
				{Phrase: "cannot get up", Weight: 2.5},
				{Phrase: "fell and can't get up", Weight: 3.0},
				{Phrase: "on the floor", Weight: 1.5},
				{Phrase: "loss of consciousness", Weight: 3.0},
				{Phrase: "lost consciousness", Weight: 3.0},
				{Phrase: "passed out", Weight: 3.0},
				{Phrase: "fainted", Weight: 3.0},
				{Phrase: "unresponsive", Weight: 3.0},
				{Phrase: "bleeding heavily", Weight: 3.0},
				{Phrase: "want to die", Weight: 3.0},
				{Phrase: "kill myself", Weight: 3.0},
				{Phrase: "end my life", Weight: 3.0},
				{Phrase: "hurt myself", Weight: 2.5},
				{Phrase: "suicide", Weight: 3.0},
				{Phrase: "suicidal", Weight: 3.0},
			},
			CategoryDiagnosis: {
				{Phrase: "do i have", Weight: 2.0},
				{Phrase: "what do i have", Weight: 2.5},
				{Phrase: "diagnose", Weight: 2.5},
				{Phrase: "diagnosis", Weight: 2.0},
				{Phrase: "what is wrong with me", Weight: 2.5},
				{Phrase: "what's wrong with me", Weight: 2.5},
				{Phrase: "what condition do i have", Weight: 2.5},
				{Phrase: "what illness", Weight: 2.0},
				{Phrase: "is this a symptom of", Weight: 2.0},
				{Phrase: "could this be", Weight: 1.5},
			},
			CategoryPrescription: {
				{Phrase: "what medicine should i take", Weight: 3.0},
				{Phrase: "what medication should i take", Weight: 3.0},
				{Phrase: "should i take", Weight: 2.0},
				{Phrase: "what should i take", Weight: 2.5},
				{Phrase: "how much should i take", Weight: 2.5},
				{Phrase: "prescribe", Weight: 2.5},
				{Phrase: "prescription for", Weight: 2.0},
				{Phrase: "dosage", Weight: 2.0},
				{Phrase: "increase my dose", Weight: 2.5},
				{Phrase: "change my dose", Weight: 2.5},
				{Phrase: "double my dose", Weight: 2.5},
				{Phrase: "stop taking my", Weight: 2.0},
				{Phrase: "which painkiller", Weight: 2.5},
			},
			// out-of-scope carries no signals: it is the fallback when
			// nothing else crosses its threshold.
			CategoryOutOfScope: nil,
		},
		Negators: []string{
			"no", "not", "never", "without",
			"don't", "dont", "doesn't", "doesnt", "didn't", "didnt",
			"haven't", "havent", "hasn't", "hasnt",
			"isn't", "isnt", "aren't", "arent", "wasn't", "wasnt",
		},
		ContinuityCues: []string{
			"what else",
			"anything else",
			"any other",
			"more tips",
			"what about",
			"tell me more",
		},
	}

	for _, prefix := range claimPrefixes {
		for _, cond := range conditionTerms {
			t.Signals[CategoryDiagnosis] = append(t.Signals[CategoryDiagnosis], Signal{
				Phrase: prefix + " " + cond,
				Weight: 2.5,
			})
		}
	}

	return t
}
