package bank

// #region seedling-bank

// seedlingDims is the declaration order of the seedling trait dimensions.
var seedlingDims = []Category{
	DimExecution,
	DimAnalytical,
	DimSocial,
	DimEmpathy,
	DimCuriosity,
}

// LikertLabels are the display labels for the seedling scale, indexed by
// value minus Scale.Lo.
var LikertLabels = []string{
	"Strongly Disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly Agree",
}

var seedlingBank = &Bank{
	Name:          BankSeedling,
	Scale:         Scale{Lo: 1, Hi: 5},
	Categories:    seedlingDims,
	DefaultLocale: "en",
	localeOrder:   []string{"en"},
	locales: map[string][]Question{
		"en": seedlingEN,
	},
}

// Seedling returns the 30-question Likert bank. Every question carries an
// explicit multi-dimension weight map; a dimension absent from the map
// contributes nothing for that question.
func Seedling() *Bank {
	return seedlingBank
}

// #endregion seedling-bank

// #region seedling-en

var seedlingEN = []Question{
	// Think & Learn
	{ID: "q1", Text: "I understand things better when I try them out, rather than only reading or watching.", Weights: map[Category]float64{DimExecution: 0.5, DimCuriosity: 0.5, DimAnalytical: 0.2}},
	{ID: "q2", Text: "I like breaking big problems into clear steps before starting.", Weights: map[Category]float64{DimExecution: 1.0, DimAnalytical: 0.6}},
	{ID: "q3", Text: "I often think about how things could be improved, even if they already work.", Weights: map[Category]float64{DimCuriosity: 0.8, DimAnalytical: 0.5}},
	{ID: "q4", Text: "I prefer clear instructions rather than vague guidance.", Weights: map[Category]float64{DimExecution: 0.8}},
	{ID: "q5", Text: "I learn best when I understand the ‘why’, not just the ‘how’.", Weights: map[Category]float64{DimAnalytical: 0.6, DimCuriosity: 0.4}},

	// Execution
	{ID: "q6", Text: "I usually start tasks early rather than waiting till the last moment.", Weights: map[Category]float64{DimExecution: 1.0}},
	{ID: "q7", Text: "I enjoy planning my day or week.", Weights: map[Category]float64{DimExecution: 0.9}},
	{ID: "q8", Text: "I feel satisfied when I finish tasks, even small ones.", Weights: map[Category]float64{DimExecution: 0.7}},
	{ID: "q9", Text: "I adapt quickly when plans change.", Weights: map[Category]float64{DimExecution: 0.4, DimCuriosity: 0.4}},
	{ID: "q10", Text: "I prefer doing something imperfectly than not starting at all.", Weights: map[Category]float64{DimExecution: 0.5, DimCuriosity: 0.3}},

	// Social
	{ID: "q11", Text: "I often take the lead in group activities without being asked.", Weights: map[Category]float64{DimSocial: 1.0, DimExecution: 0.4}},
	{ID: "q12", Text: "I feel comfortable sharing my opinions, even if others disagree.", Weights: map[Category]float64{DimSocial: 0.8, DimAnalytical: 0.2}},
	{ID: "q13", Text: "I enjoy helping others understand things better.", Weights: map[Category]float64{DimEmpathy: 0.8, DimSocial: 0.3}},
	{ID: "q14", Text: "I prefer working in a team rather than alone.", Weights: map[Category]float64{DimSocial: 0.6, DimEmpathy: 0.4}},
	{ID: "q15", Text: "I notice when people around me feel uncomfortable or left out.", Weights: map[Category]float64{DimEmpathy: 1.0}},

	// Curiosity
	{ID: "q16", Text: "I explore topics out of curiosity, even if they’re not part of my syllabus/job.", Weights: map[Category]float64{DimCuriosity: 1.0}},
	{ID: "q17", Text: "I get excited by new ideas and possibilities.", Weights: map[Category]float64{DimCuriosity: 0.9}},
	{ID: "q18", Text: "I like experimenting with new ways of doing things.", Weights: map[Category]float64{DimCuriosity: 0.8}},
	{ID: "q19", Text: "I feel bored doing the same routine for a long time.", Weights: map[Category]float64{DimCuriosity: 0.6}},
	{ID: "q20", Text: "I ask ‘why’ a lot.", Weights: map[Category]float64{DimCuriosity: 0.5, DimAnalytical: 0.5}},

	// Decision & Values
	{ID: "q21", Text: "I prefer making decisions based on logic and facts rather than emotions.", Weights: map[Category]float64{DimAnalytical: 1.0}},
	{ID: "q22", Text: "I think about how my decisions affect other people.", Weights: map[Category]float64{DimEmpathy: 0.9}},
	{ID: "q23", Text: "I like having clear rules and structure.", Weights: map[Category]float64{DimExecution: 0.7}},
	{ID: "q24", Text: "I am okay questioning rules if they don’t make sense.", Weights: map[Category]float64{DimCuriosity: 0.4, DimAnalytical: 0.4}},
	{ID: "q25", Text: "I care more about doing things right than doing things fast.", Weights: map[Category]float64{DimExecution: 0.5, DimAnalytical: 0.3}},

	// Confidence & Resilience
	{ID: "q26", Text: "I feel confident speaking in front of others.", Weights: map[Category]float64{DimSocial: 0.8}},
	{ID: "q27", Text: "I stay calm even in stressful situations.", Weights: map[Category]float64{DimExecution: 0.4, DimAnalytical: 0.4}},
	{ID: "q28", Text: "I am comfortable taking responsibility if something goes wrong.", Weights: map[Category]float64{DimExecution: 0.8}},
	{ID: "q29", Text: "I believe I can figure things out, even if I fail initially.", Weights: map[Category]float64{DimCuriosity: 0.3, DimExecution: 0.4, DimAnalytical: 0.3}},
	{ID: "q30", Text: "I trust my ability to grow and improve over time.", Weights: map[Category]float64{DimCuriosity: 0.3, DimExecution: 0.3}},
}

// #endregion seedling-en
