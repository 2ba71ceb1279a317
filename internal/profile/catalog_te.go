package profile

import "github.com/seedlinghq/seedling-engine/internal/bank"

// #region catalog-te

var catalogTE = map[bank.Category]Profile{
	bank.CategoryStructure: {
		Key:         bank.CategoryStructure,
		Title:       "ప్లానర్",
		Description: "మీరు సంస్థ మరియు స్పష్టమైన లక్ష్యాలతో అభివృద్ధి చెందుతారు",
		Strengths:   []string{"బలమైన అమలు", "నమ్మదగిన", "వివరాల-ఆధారిత", "సమయ నిర్వహణ"},
		WatchOuts:   []string{"ఆకస్మిక మార్పులతో కష్టపడవచ్చు", "కొన్నిసార్లు దృఢంగా ఉండవచ్చు"},
		Patterns:    "మీకు స్పష్టమైన రోడ్‌మ్యాప్ ఉన్నప్పుడు మీరు ఉత్తమంగా పని చేస్తారు। మీరు సహజంగా పెద్ద లక్ష్యాలను చిన్న దశల్లోకి విభజిస్తారు।",
		NextSteps:   "ఈ వారం సాధారణ చెక్‌లిస్ట్ లేదా ప్లానర్ ఉపయోగించి ఒక చిన్న ప్రాజెక్ట్‌ను నిర్వహించడానికి ప్రయత్నించండి।",
	},
	bank.CategoryAnalytical: {
		Key:         bank.CategoryAnalytical,
		Title:       "ఆలోచనాపరుడు",
		Description: "మీరు తర్కం మరియు కారణంతో సమస్యలను సంప్రదిస్తారు",
		Strengths:   []string{"సమస్య-పరిష్కారం", "విమర్శనాత్మక ఆలోచన", "నమూనా గుర్తింపు", "పరిశోధన నైపుణ్యాలు"},
		WatchOuts:   []string{"సరళ నిర్ణయాలను అతిగా ఆలోచించవచ్చు", "భావోద్వేగ అంశాలను కోల్పోవచ్చు"},
		Patterns:    `"ఎందుకు" విషయాలు పని చేస్తాయో అర్థం చేసుకోవడం మీకు ఇష్టం. మీరు సహజంగా మూల కారణాల గురించి ఆసక్తిగా ఉంటారు।`,
		NextSteps:   "ఒక రోజువారీ సమస్యను ఎంచుకోండి మరియు దాని మూల కారణాన్ని విశ్లేషించడానికి 10 నిమిషాలు గడపండి।",
	},
	bank.CategorySocial: {
		Key:         bank.CategorySocial,
		Title:       "కనెక్టర్",
		Description: "మీరు ప్రజలకు శక్తినిచ్చి, వారిని కలుపుతారు",
		Strengths:   []string{"కమ్యూనికేషన్", "టీమ్ బిల్డింగ్", "నాయకత్వ సామర్థ్యం", "నెట్‌వర్కింగ్"},
		WatchOuts:   []string{"ఒంటరిగా పని చేయడంలో కష్టపడవచ్చు", "చాలా బాధ్యత తీసుకోవచ్చు"},
		Patterns:    "మీరు పరస్పర చర్యల నుండి శక్తిని పొందుతారు. మీరు సహజంగా సంభాషణలు మరియు కార్యకలాపాలను సులభతరం చేస్తారు।",
		NextSteps:   "ఈ వారం ఎవరైనా కొత్త వ్యక్తితో ఒక అర్థవంతమైన సంభాషణను ప్రారంభించండి।",
	},
	bank.CategoryEmpathy: {
		Key:         bank.CategoryEmpathy,
		Title:       "మద్దతుదారు",
		Description: "మీరు ఇతరులను లోతుగా అర్థం చేసుకుంటారు మరియు శ్రద్ధ వహిస్తారు",
		Strengths:   []string{"భావోద్వేగ తెలివితేటలు", "సంఘర్షణ పరిష్కారం", "నమ్మకం-నిర్మాణం", "వినడం"},
		WatchOuts:   []string{"ఇతరుల ఒత్తిడిని గ్రహించవచ్చు", "స్వంత అవసరాలను నిర్లక్ష్యం చేయవచ్చు"},
		Patterns:    "మీరు ఇతరులు కోల్పోయే సూక్ష్మ సంకేతాలను గుర్తించగలరు. ప్రజలు సహజంగా మీకు తెరుచుకుంటారు।",
		NextSteps:   "ఈ వారం ఎవరికైనా సహాయం చేయండి, కానీ మీ శక్తిని రక్షించడానికి ఒక హద్దును కూడా సెట్ చేయండి।",
	},
	bank.CategoryCuriosity: {
		Key:         bank.CategoryCuriosity,
		Title:       "అన్వేషకుడు",
		Description: "మీరు నేర్చుకోవడం మరియు కొత్త విషయాలను ప్రయత్నించడం ఇష్టపడతారు",
		Strengths:   []string{"అనుకూలత", "ఆవిష్కరణ", "త్వరిత అభ్యాసం", "ముఖచిత్రం-మనస్సు"},
		WatchOuts:   []string{"పూర్తి చేయకుండా అనేక విషయాలను ప్రారంభించవచ్చు", "ఎంపికలతో అధికంగా ఉండవచ్చు"},
		Patterns:    "మీరు సహజంగా కొత్త అనుభవాల వైపు ఆకర్షితులవుతారు. మీరు ప్రయోగాలు మరియు కనుగొనడం ఆనందిస్తారు।",
		NextSteps:   "ఒక కొత్త నైపుణ్యం లేదా విషయం ఎంచుకోండి మరియు ఈ వారం 30 నిమిషాలు నేర్చుకోవడానికి కట్టుబడి ఉండండి।",
	},
	bank.CategoryFocus: {
		Key:         bank.CategoryFocus,
		Title:       "పరధ్యానంగా ఉండేవారు",
		Description: "మీరు ఏకాగ్రత కొనసాగించడంలో కష్టపడుతున్నారు",
		Strengths:   []string{"సవాలు గురించి అవగాహన", "మల్టీటాస్కింగ్ సామర్థ్యం", "సౌకర్యవంతమైన శ్రద్ధ"},
		WatchOuts:   []string{"తగ్గిన ఉత్పాదకత", "అసంపూర్ణ పనులు", "మారడం నుండి ఒత్తిడి"},
		Patterns:    "డిజిటల్ పరధ్యానాలు తరచుగా మీ శ్రద్ధను లాగుతాయి. లోతైన పని సవాలుగా అనిపిస్తుంది।",
		NextSteps:   "మరొక గదిలో ఫోన్‌తో 25 నిమిషాల ఏకాగ్రత పని సెషన్ ప్రయత్నించండి।",
	},
	bank.CategoryCivic: {
		Key:         bank.CategoryCivic,
		Title:       "సహకారి",
		Description: "మీరు మీ సమాజం గురించి శ్రద్ధ వహిస్తారు మరియు చర్య తీసుకుంటారు",
		Strengths:   []string{"సామాజిక బాధ్యత", "చొరవ", "పర్యావరణ అవగాహన", "నాయకత్వం"},
		WatchOuts:   []string{"ఇతరుల నిష్క్రియత్వంతో నిరాశ చెందవచ్చు", "కాల్చుకోవచ్చు"},
		Patterns:    "మీరు ఏమి సరిచేయాలో గమనించి, చర్య తీసుకోవడానికి ప్రేరేపించబడతారు. చిన్న చర్యలు మీకు ముఖ్యం।",
		NextSteps:   "ఈ వారం ఒక చిన్న పౌర చర్య తీసుకోండి (చెత్తను తీయండి, పొరుగువారికి సహాయం చేయండి, సమస్యను నివేదించండి)।",
	},
	bank.CategoryResponsibility: {
		Key:         bank.CategoryResponsibility,
		Title:       "జవాబుదారీగా ఉండేవారు",
		Description: "మీరు మీ చర్యలు మరియు వాటి పర్యవసానాలకు యజమాని",
		Strengths:   []string{"సమగ్రత", "నమ్మకత్వం", "వృద్ధి మనస్తత్వం", "పరిపక్వత"},
		WatchOuts:   []string{"మీపై చాలా కఠినంగా ఉండవచ్చు", "అనవసరంగా నిందను తీసుకోవచ్చు"},
		Patterns:    "మీరు సాకులు చెప్పరు. మీరు తప్పుల నుండి నేర్చుకుని ముందుకు సాగుతారు।",
		NextSteps:   "ఇటీవలి తప్పును అంగీకరించండి, పాఠాన్ని గుర్తించండి మరియు నేరారోపణ లేకుండా ముందుకు సాగండి।",
	},
	bank.CategoryDecisiveness: {
		Key:         bank.CategoryDecisiveness,
		Title:       "సంకోచంగా ఉండేవారు",
		Description: "మీరు ఎంపికలను జాగ్రత్తగా తూచుతారు, కొన్నిసార్లు చాలా ఎక్కువ",
		Strengths:   []string{"ఆలోచనాపూర్వకం", "ప్రమాద-అవగాహన", "పర్యవసానాలను పరిగణిస్తుంది"},
		WatchOuts:   []string{"విశ్లేషణ పక్షవాతం", "తప్పిపోయిన అవకాశాలు", "నిర్ణయ అలసట"},
		Patterns:    "మీరు తప్పు ఎంపిక చేయడానికి భయపడతారు. మీరు కట్టుబడే ముందు మరింత సమాచారం కోరుతారు।",
		NextSteps:   "ఈ వారం ఒక చిన్న నిర్ణయాన్ని త్వరగా తీసుకోండి (2 నిమిషాల కంటే తక్కువ). ఏమి జరుగుతుందో గమనించండి।",
	},
	bank.CategoryAdaptability: {
		Key:         bank.CategoryAdaptability,
		Title:       "సౌకర్యవంతమైన",
		Description: "మీరు కొత్త పరిస్థితులకు సులభంగా సర్దుబాటు చేస్తారు",
		Strengths:   []string{"స్థితిస్థాపకత", "సమస్య-పరిష్కారం", "సృజనాత్మకత", "ఒత్తిడి నిర్వహణ"},
		WatchOuts:   []string{"స్థిరత్వం లేకపోవచ్చు", "ప్లానింగ్ నుండి తప్పించుకోవచ్చు"},
		Patterns:    "ప్లాన్‌లు మారినప్పుడు, మీరు సులభంగా మారిపోతారు. మీరు ఇతరులు కోల్పోయే ప్రత్యామ్నాయాలను చూస్తారు।",
		NextSteps:   "ఈ వారం ఏదైనా పని చేయనప్పుడు, వెంటనే వేరే విధానాన్ని ప్రయత్నించండి।",
	},
	bank.CategoryBalanced: {
		Key:         bank.CategoryBalanced,
		Title:       "సమతుల్యత",
		Description: "మీరు వివిధ బలాల మిశ్రమాన్ని చూపిస్తారు",
		Strengths:   []string{"బహుముఖ", "అనుకూలత", "సమగ్ర దృక్పథం"},
		WatchOuts:   []string{"ప్రత్యేక బలం లేకపోవచ్చు", "దిశ గురించి అస్పష్టంగా అనిపించవచ్చు"},
		Patterns:    "మీరు పరిస్థితులకు బహుళ దృక్కోణాలను తీసుకువస్తారు. ఏ ఒక్క శైలి ఆధిపత్యం చెలాయించదు।",
		NextSteps:   "మీకు ఎక్కువ శక్తినిచ్చే పరిస్థితులను ప్రతిబింబించండి—అది మీ దాచిన బలం।",
	},
}

// #endregion catalog-te
