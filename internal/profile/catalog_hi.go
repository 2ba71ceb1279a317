package profile

import "github.com/seedlinghq/seedling-engine/internal/bank"

// #region catalog-hi

var catalogHI = map[bank.Category]Profile{
	bank.CategoryStructure: {
		Key:         bank.CategoryStructure,
		Title:       "योजनाकार",
		Description: "आप संगठन और स्पष्ट लक्ष्यों के साथ फलते-फूलते हैं",
		Strengths:   []string{"मजबूत निष्पादन", "विश्वसनीय", "विस्तार-उन्मुख", "समय प्रबंधन"},
		WatchOuts:   []string{"अचानक बदलावों से जूझ सकते हैं", "कभी-कभी कठोर हो सकते हैं"},
		Patterns:    "जब आपके पास स्पष्ट रोडमैप होता है तो आप सबसे अच्छा काम करते हैं। आप स्वाभाविक रूप से बड़े लक्ष्यों को छोटे चरणों में तोड़ते हैं।",
		NextSteps:   "इस हफ्ते एक साधारण चेकलिस्ट या प्लानर का उपयोग करके एक छोटी परियोजना का प्रबंधन करने का प्रयास करें।",
	},
	bank.CategoryAnalytical: {
		Key:         bank.CategoryAnalytical,
		Title:       "विचारक",
		Description: "आप तर्क और कारण के साथ समस्याओं का समाधान करते हैं",
		Strengths:   []string{"समस्या-समाधान", "आलोचनात्मक सोच", "पैटर्न पहचान", "अनुसंधान कौशल"},
		WatchOuts:   []string{"सरल निर्णयों पर अधिक सोच सकते हैं", "भावनात्मक पहलुओं को चूक सकते हैं"},
		Patterns:    `आपको "क्यों" चीजें काम करती हैं यह समझना पसंद है। आप स्वाभाविक रूप से मूल कारणों के बारे में उत्सुक हैं।`,
		NextSteps:   "एक रोजमर्रा की समस्या चुनें और उसके मूल कारण का विश्लेषण करने में 10 मिनट बिताएं।",
	},
	bank.CategorySocial: {
		Key:         bank.CategorySocial,
		Title:       "संपर्ककर्ता",
		Description: "आप लोगों को ऊर्जा देते हैं और एक साथ लाते हैं",
		Strengths:   []string{"संचार", "टीम निर्माण", "नेतृत्व क्षमता", "नेटवर्किंग"},
		WatchOuts:   []string{"अकेले काम करने में संघर्ष हो सकता है", "बहुत अधिक जिम्मेदारी ले सकते हैं"},
		Patterns:    "आप इंटरैक्शन से ऊर्जा प्राप्त करते हैं। आप स्वाभाविक रूप से बातचीत और गतिविधियों को सुगम बनाते हैं।",
		NextSteps:   "इस हफ्ते किसी नए व्यक्ति के साथ एक सार्थक बातचीत शुरू करें।",
	},
	bank.CategoryEmpathy: {
		Key:         bank.CategoryEmpathy,
		Title:       "समर्थक",
		Description: "आप दूसरों को गहराई से समझते और परवाह करते हैं",
		Strengths:   []string{"भावनात्मक बुद्धिमत्ता", "संघर्ष समाधान", "विश्वास निर्माण", "सुनना"},
		WatchOuts:   []string{"दूसरों का तनाव सोख सकते हैं", "अपनी जरूरतों की उपेक्षा कर सकते हैं"},
		Patterns:    "आप सूक्ष्म संकेतों को पकड़ लेते हैं जो दूसरे चूक जाते हैं। लोग स्वाभाविक रूप से आपके सामने खुल जाते हैं।",
		NextSteps:   "इस हफ्ते किसी की मदद करें, लेकिन अपनी ऊर्जा की रक्षा के लिए एक सीमा भी निर्धारित करें।",
	},
	bank.CategoryCuriosity: {
		Key:         bank.CategoryCuriosity,
		Title:       "खोजकर्ता",
		Description: "आप सीखना और नई चीजें आजमाना पसंद करते हैं",
		Strengths:   []string{"अनुकूलन क्षमता", "नवाचार", "त्वरित सीखना", "खुला दिमाग"},
		WatchOuts:   []string{"बिना खत्म किए कई चीजें शुरू कर सकते हैं", "विकल्पों से अभिभूत हो सकते हैं"},
		Patterns:    "आप स्वाभाविक रूप से नए अनुभवों की ओर आकर्षित होते हैं। आप प्रयोग और खोज का आनंद लेते हैं।",
		NextSteps:   "एक नया कौशल या विषय चुनें और इस हफ्ते 30 मिनट के लिए इसे सीखने के लिए प्रतिबद्ध हों।",
	},
	bank.CategoryFocus: {
		Key:         bank.CategoryFocus,
		Title:       "विचलित",
		Description: "आप एकाग्रता बनाए रखने में संघर्ष करते हैं",
		Strengths:   []string{"चुनौती के प्रति जागरूक", "मल्टीटास्किंग क्षमता", "लचीला ध्यान"},
		WatchOuts:   []string{"कम उत्पादकता", "अधूरे कार्य", "स्विच करने से तनाव"},
		Patterns:    "डिजिटल विकर्षण अक्सर आपका ध्यान खींचते हैं। गहन कार्य चुनौतीपूर्ण लगता है।",
		NextSteps:   "दूसरे कमरे में फोन रखकर 25 मिनट का एक केंद्रित कार्य सत्र आजमाएं।",
	},
	bank.CategoryCivic: {
		Key:         bank.CategoryCivic,
		Title:       "योगदानकर्ता",
		Description: "आप अपने समुदाय की परवाह करते हैं और कार्रवाई करते हैं",
		Strengths:   []string{"सामाजिक जिम्मेदारी", "पहल", "पर्यावरण जागरूकता", "नेतृत्व"},
		WatchOuts:   []string{"दूसरों की निष्क्रियता से निराश हो सकते हैं", "थक सकते हैं"},
		Patterns:    "आप नोटिस करते हैं कि क्या ठीक करने की जरूरत है और कार्य करने के लिए प्रेरित महसूस करते हैं। छोटी कार्रवाइयां आपके लिए मायने रखती हैं।",
		NextSteps:   "इस हफ्ते एक छोटी नागरिक कार्रवाई करें (कचरा उठाएं, पड़ोसी की मदद करें, एक मुद्दा रिपोर्ट करें)।",
	},
	bank.CategoryResponsibility: {
		Key:         bank.CategoryResponsibility,
		Title:       "जवाबदेह",
		Description: "आप अपने कार्यों और उनके परिणामों के मालिक हैं",
		Strengths:   []string{"सत्यनिष्ठा", "विश्वसनीयता", "विकास मानसिकता", "परिपक्वता"},
		WatchOuts:   []string{"खुद पर बहुत कठोर हो सकते हैं", "अनावश्यक रूप से दोष ले सकते हैं"},
		Patterns:    "आप बहाने नहीं बनाते। आप गलतियों से सीखते हैं और आगे बढ़ते हैं।",
		NextSteps:   "एक हालिया गलती स्वीकार करें, सबक पहचानें, और बिना अपराध बोध के आगे बढ़ें।",
	},
	bank.CategoryDecisiveness: {
		Key:         bank.CategoryDecisiveness,
		Title:       "संकोची",
		Description: "आप विकल्पों को सावधानी से तौलते हैं, कभी-कभी बहुत अधिक",
		Strengths:   []string{"विचारशील", "जोखिम-जागरूक", "परिणामों पर विचार करता है"},
		WatchOuts:   []string{"विश्लेषण पक्षाघात", "छूटे अवसर", "निर्णय थकान"},
		Patterns:    "आप गलत विकल्प बनाने से डरते हैं। आप प्रतिबद्ध होने से पहले अधिक जानकारी चाहते हैं।",
		NextSteps:   "इस हफ्ते एक छोटा निर्णय जल्दी लें (2 मिनट से कम)। नोटिस करें क्या होता है।",
	},
	bank.CategoryAdaptability: {
		Key:         bank.CategoryAdaptability,
		Title:       "लचीला",
		Description: "आप आसानी से नई स्थितियों के अनुकूल हो जाते हैं",
		Strengths:   []string{"लचीलापन", "समस्या-समाधान", "रचनात्मकता", "तनाव प्रबंधन"},
		WatchOuts:   []string{"निरंतरता की कमी हो सकती है", "योजना से बच सकते हैं"},
		Patterns:    "जब योजनाएं बदलती हैं, तो आप आसानी से बदल जाते हैं। आप वैकल्पिक विकल्प देखते हैं जो दूसरे चूक जाते हैं।",
		NextSteps:   "इस हफ्ते जब कुछ काम नहीं करता है, तो तुरंत एक अलग दृष्टिकोण आजमाएं।",
	},
	bank.CategoryBalanced: {
		Key:         bank.CategoryBalanced,
		Title:       "संतुलित",
		Description: "आप विभिन्न शक्तियों का मिश्रण दिखाते हैं",
		Strengths:   []string{"बहुमुखी", "अनुकूलनीय", "सर्वांगीण दृष्टिकोण"},
		WatchOuts:   []string{"एक विशिष्ट शक्ति की कमी हो सकती है", "दिशा के बारे में अस्पष्ट महसूस कर सकते हैं"},
		Patterns:    "आप स्थितियों में कई दृष्टिकोण लाते हैं। कोई एकल शैली हावी नहीं होती।",
		NextSteps:   "विचार करें कि कौन सी स्थितियां आपको सबसे अधिक ऊर्जा देती हैं—वह आपकी छिपी ताकत है।",
	},
}

// #endregion catalog-hi
