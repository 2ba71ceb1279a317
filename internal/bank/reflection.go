package bank

// #region reflection-bank

// reflectionCategories is the declaration (and tie-break) order of the
// reflection bank's trait axes.
var reflectionCategories = []Category{
	CategoryStructure,
	CategoryAnalytical,
	CategorySocial,
	CategoryEmpathy,
	CategoryCuriosity,
	CategoryFocus,
	CategoryCivic,
	CategoryResponsibility,
	CategoryDecisiveness,
	CategoryAdaptability,
}

var reflectionBank = &Bank{
	Name:          BankReflection,
	Scale:         Scale{Lo: 0, Hi: 3}, // 0=No, 1=Not really, 2=Mostly yes, 3=Yes
	Categories:    reflectionCategories,
	DefaultLocale: "en",
	localeOrder:   []string{"en", "hi", "te"},
	locales: map[string][]Question{
		"en": reflectionEN,
		"hi": reflectionHI,
		"te": reflectionTE,
	},
}

// Reflection returns the 4-point self-reflection bank. Negative weights on
// q6 and q9 invert the raw answer before accumulation.
func Reflection() *Bank {
	return reflectionBank
}

// #endregion reflection-bank

// #region reflection-en

var reflectionEN = []Question{
	{ID: "q1", Text: "I feel most productive when I have a clear plan and structure for my day.", Weights: map[Category]float64{CategoryStructure: 1}},
	{ID: "q2", Text: "When faced with a problem, I enjoy breaking it down logically to find the root cause.", Weights: map[Category]float64{CategoryAnalytical: 1}},
	{ID: "q3", Text: "I often find myself initiating conversations or activities in group settings.", Weights: map[Category]float64{CategorySocial: 1}},
	{ID: "q4", Text: "I find it easy to understand how others are feeling, even when they don't say it.", Weights: map[Category]float64{CategoryEmpathy: 1}},
	{ID: "q5", Text: "I get excited about learning new things, even if they're outside my comfort zone.", Weights: map[Category]float64{CategoryCuriosity: 1}},
	{ID: "q6", Text: "I often feel distracted by my phone or social media when trying to focus on important tasks.", Weights: map[Category]float64{CategoryFocus: -1}},
	{ID: "q7", Text: "When I see litter or something out of place in public, I usually do something about it.", Weights: map[Category]float64{CategoryCivic: 1}},
	{ID: "q8", Text: "I tend to take responsibility for my mistakes rather than making excuses.", Weights: map[Category]float64{CategoryResponsibility: 1}},
	{ID: "q9", Text: "I sometimes delay important decisions because I'm worried about making the wrong choice.", Weights: map[Category]float64{CategoryDecisiveness: -1}},
	{ID: "q10", Text: "Like a hero who adapts to any challenge, I try new approaches when the old ones don't work.", Weights: map[Category]float64{CategoryAdaptability: 1}, Superhero: true},
	{ID: "q11", Text: "When someone shares a problem with me, I genuinely care and want to help them feel better.", Weights: map[Category]float64{CategoryEmpathy: 1}},
	{ID: "q12", Text: "When I commit to something, people can count on me to follow through.", Weights: map[Category]float64{CategoryResponsibility: 1}},
}

// #endregion reflection-en

// #region reflection-hi

var reflectionHI = []Question{
	{ID: "q1", Text: "जब मेरे दिन के लिए एक स्पष्ट योजना और संरचना होती है तो मैं सबसे अधिक उत्पादक महसूस करता हूं।", Weights: map[Category]float64{CategoryStructure: 1}},
	{ID: "q2", Text: "जब किसी समस्या का सामना करना पड़ता है, तो मुझे मूल कारण खोजने के लिए इसे तार्किक रूप से तोड़ना पसंद है।", Weights: map[Category]float64{CategoryAnalytical: 1}},
	{ID: "q3", Text: "मैं अक्सर समूह सेटिंग्स में बातचीत या गतिविधियों की शुरुआत करता हूं।", Weights: map[Category]float64{CategorySocial: 1}},
	{ID: "q4", Text: "मुझे यह समझना आसान लगता है कि दूसरे कैसा महसूस कर रहे हैं, भले ही वे इसे न कहें।", Weights: map[Category]float64{CategoryEmpathy: 1}},
	{ID: "q5", Text: "मैं नई चीजें सीखने के लिए उत्साहित हो जाता हूं, भले ही वे मेरे आराम क्षेत्र से बाहर हों।", Weights: map[Category]float64{CategoryCuriosity: 1}},
	{ID: "q6", Text: "जब मैं महत्वपूर्ण कार्यों पर ध्यान केंद्रित करने की कोशिश करता हूं तो मैं अक्सर अपने फोन या सोशल मीडिया से विचलित महसूस करता हूं।", Weights: map[Category]float64{CategoryFocus: -1}},
	{ID: "q7", Text: "जब मैं सार्वजनिक रूप से कचरा या कुछ गड़बड़ देखता हूं, तो मैं आमतौर पर इसके बारे में कुछ करता हूं।", Weights: map[Category]float64{CategoryCivic: 1}},
	{ID: "q8", Text: "मैं बहाने बनाने के बजाय अपनी गलतियों की जिम्मेदारी लेता हूं।", Weights: map[Category]float64{CategoryResponsibility: 1}},
	{ID: "q9", Text: "मैं कभी-कभी महत्वपूर्ण निर्णयों में देरी करता हूं क्योंकि मुझे गलत विकल्प चुनने की चिंता होती है।", Weights: map[Category]float64{CategoryDecisiveness: -1}},
	{ID: "q10", Text: "एक नायक की तरह जो किसी भी चुनौती के अनुकूल हो जाता है, मैं नए तरीके आजमाता हूं जब पुराने काम नहीं करते।", Weights: map[Category]float64{CategoryAdaptability: 1}, Superhero: true},
	{ID: "q11", Text: "जब कोई मुझसे कोई समस्या साझा करता है, तो मैं वास्तव में परवाह करता हूं और उन्हें बेहतर महसूस कराना चाहता हूं।", Weights: map[Category]float64{CategoryEmpathy: 1}},
	{ID: "q12", Text: "जब मैं किसी चीज के लिए प्रतिबद्ध होता हूं, तो लोग इस बात पर भरोसा कर सकते हैं कि मैं अनुसरण करूंगा।", Weights: map[Category]float64{CategoryResponsibility: 1}},
}

// #endregion reflection-hi

// #region reflection-te

// The Telugu set ships two questions short of the other locales (q11, q12
// never got translated). Answer maps are keyed by ID, so sessions survive a
// locale switch; the integrity checker surfaces the gap as a warning.
var reflectionTE = []Question{
	{ID: "q1", Text: "నా రోజుకు స్పష్టమైన ప్లాన్ మరియు స్ట్రక్చర్ ఉన్నప్పుడు నేను అత్యంత ఉత్పాదకంగా ఉంటాను.", Weights: map[Category]float64{CategoryStructure: 1}},
	{ID: "q2", Text: "సమస్యను ఎదుర్కొన్నప్పుడు, మూల కారణాన్ని కనుగొనడానికి దానిని తార్కికంగా విచ్ఛిన్నం చేయడం నాకు ఆనందం కలిగిస్తుంది.", Weights: map[Category]float64{CategoryAnalytical: 1}},
	{ID: "q3", Text: "గ్రూప్ సెట్టింగ్‌లలో నేను తరచుగా సంభాషణలు లేదా కార్యకలాపాలను ప్రారంభిస్తాను.", Weights: map[Category]float64{CategorySocial: 1}},
	{ID: "q4", Text: "ఇతరులు చెప్పకపోయినా వారు ఎలా అనుభూతి చెందుతున్నారో అర్థం చేసుకోవడం నాకు సులభం.", Weights: map[Category]float64{CategoryEmpathy: 1}},
	{ID: "q5", Text: "కొత్త విషయాలను నేర్చుకోవడం పట్ల నేను ఉత్సాహంగా ఉంటాను, అవి నా కంఫర్ట్ జోన్ వెలుపల ఉన్నా కూడా.", Weights: map[Category]float64{CategoryCuriosity: 1}},
	{ID: "q6", Text: "ముఖ్యమైన పనులపై దృష్టి పెట్టడానికి ప్రయత్నిస్తున్నప్పుడు నేను తరచుగా నా ఫోన్ లేదా సోషల్ మీడియా ద్వారా పరధ్యానంగా ఉంటాను.", Weights: map[Category]float64{CategoryFocus: -1}},
	{ID: "q7", Text: "నేను పబ్లిక్‌లో చెత్త లేదా ఏదైనా సరికాని విషయం చూసినప్పుడు, నేను సాధారణంగా దాని గురించి ఏదో చేస్తాను.", Weights: map[Category]float64{CategoryCivic: 1}},
	{ID: "q8", Text: "నేను సాకులు చెప్పడం కంటే నా తప్పులకు బాధ్యత తీసుకుంటాను.", Weights: map[Category]float64{CategoryResponsibility: 1}},
	{ID: "q9", Text: "తప్పు ఎంపిక చేసేందుకు భయపడుతున్నందున నేను కొన్నిసార్లు ముఖ్యమైన నిర్ణయాలను ఆలస్యం చేస్తాను.", Weights: map[Category]float64{CategoryDecisiveness: -1}},
	{ID: "q10", Text: "ఏ సవాలుకైనా అనుగుణంగా మారే హీరో లాగా, పాత పద్ధతులు పని చేయనప్పుడు నేను కొత్త విధానాలను ప్రయత్నిస్తాను.", Weights: map[Category]float64{CategoryAdaptability: 1}, Superhero: true},
}

// #endregion reflection-te
