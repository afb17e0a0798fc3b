package dict

// Typos maps known misspellings to their corrections. Lookup keys are
// lowercase; callers must lowercase the candidate token first.
// The list is weighted toward errors that show up in academic drafts.
var Typos = map[string]string{
	// Classic misspellings.
	"teh":           "the",
	"recieve":       "receive",
	"wierd":         "weird",
	"alot":          "a lot",
	"definately":    "definitely",
	"definitly":     "definitely",
	"seperate":      "separate",
	"occured":       "occurred",
	"accomodate":    "accommodate",
	"adress":        "address",
	"agressive":     "aggressive",
	"apparant":      "apparent",
	"appearence":    "appearance",
	"arguement":     "argument",
	"basicly":       "basically",
	"begining":      "beginning",
	"beleive":       "believe",
	"belive":        "believe",
	"buisness":      "business",
	"calender":      "calendar",
	"catagory":      "category",
	"cheif":         "chief",
	"collegue":      "colleague",
	"comming":       "coming",
	"commitee":      "committee",
	"completly":     "completely",
	"concious":      "conscious",
	"curiousity":    "curiosity",
	"decieve":       "deceive",
	"dissapoint":    "disappoint",
	"embarass":      "embarrass",
	"enviroment":    "environment",
	"existance":     "existence",
	"experiance":    "experience",
	"finaly":        "finally",
	"foriegn":       "foreign",
	"freind":        "friend",
	"goverment":     "government",
	"happend":       "happened",
	"hieght":        "height",
	"immediatly":    "immediately",
	"independant":   "independent",
	"interupt":      "interrupt",
	"irrelevent":    "irrelevant",
	"knowlege":      "knowledge",
	"libary":        "library",
	"lisence":       "license",
	"maintainance":  "maintenance",
	"managment":     "management",
	"millenium":     "millennium",
	"mispell":       "misspell",
	"neccessary":    "necessary",
	"noticable":     "noticeable",
	"occassion":     "occasion",
	"occassionally": "occasionally",
	"occurance":     "occurrence",
	"oppurtunity":   "opportunity",
	"persistant":    "persistent",
	"posession":     "possession",
	"prefered":      "preferred",
	"presance":      "presence",
	"publically":    "publicly",
	"realy":         "really",
	"reccomend":     "recommend",
	"refered":       "referred",
	"relevent":      "relevant",
	"remeber":       "remember",
	"repitition":    "repetition",
	"rythm":         "rhythm",
	"sieze":         "seize",
	"similer":       "similar",
	"sincerly":      "sincerely",
	"speach":        "speech",
	"succesful":     "successful",
	"supress":       "suppress",
	"suprise":       "surprise",
	"tendancy":      "tendency",
	"threshhold":    "threshold",
	"tommorrow":     "tomorrow",
	"truely":        "truly",
	"untill":        "until",
	"usally":        "usually",
	"vaccuum":       "vacuum",
	"vehical":       "vehicle",
	"visable":       "visible",
	"wether":        "whether",
	"writting":      "writing",

	// Errors common in academic drafts.
	"machien":       "machine",
	"enronment":     "environment",
	"financal":      "financial",
	"finacial":      "financial",
	"alocation":     "allocation",
	"empincal":      "empirical",
	"eydence":       "evidence",
	"analyis":       "analysis",
	"reseach":       "research",
	"statisical":    "statistical",
	"significiant":  "significant",
	"hypothsis":     "hypothesis",
	"methodolgy":    "methodology",
	"framwork":      "framework",
	"implmentation": "implementation",
	"exprimental":   "experimental",
	"corelation":    "correlation",
	"varibles":      "variables",
	"efficency":     "efficiency",
	"efficent":      "efficient",
	"optimzation":   "optimization",
	"algoritm":      "algorithm",
	"proceedure":    "procedure",
	"comparision":   "comparison",
	"improvment":    "improvement",
	"performace":    "performance",
	"technolgoy":    "technology",
	"inovation":     "innovation",
	"developement":  "development",
	"infomation":    "information",
	"comunication":  "communication",
	"straegy":       "strategy",
	"competitve":    "competitive",
	"advantge":      "advantage",
	"sustainble":    "sustainable",
	"organiztion":   "organization",
	"leadrship":     "leadership",
	"corprate":      "corporate",
	"corporat":      "corporate",
	"enterprse":     "enterprise",
	"industy":       "industry",
	"econmic":       "economic",
	"govenment":     "government",
	"regultion":     "regulation",
	"interntional":  "international",
	"globl":         "global",
	"popultion":     "population",
	"demographc":    "demographic",
	"geographc":     "geographic",
	"environental":  "environmental",
	"sustainbility": "sustainability",
	"resouces":      "resources",
	"polluton":      "pollution",
	"ecosytem":      "ecosystem",
	"climte":        "climate",
	"databse":       "database",
	"programing":    "programming",
	"artifical":     "artificial",
	"intellgence":   "intelligence",
	"machne":        "machine",
	"learnng":       "learning",
	"busines":       "business",
	"endowmnt":      "endowment",
}

// TitleTypos maps capitalized heading misspellings to their corrections.
// Heading words carry their own table because the general typo table is
// lowercase-keyed and headings routinely use title case.
var TitleTypos = map[string]string{
	"Teh":           "The",
	"Enronment":     "Environment",
	"Financal":      "Financial",
	"Alocation":     "Allocation",
	"Empincal":      "Empirical",
	"Eydence":       "Evidence",
	"Corporat":      "Corporate",
	"Corprate":      "Corporate",
	"Geographc":     "Geographic",
	"Busines":       "Business",
	"Endowmnt":      "Endowment",
	"Analyis":       "Analysis",
	"Reseach":       "Research",
	"Statisical":    "Statistical",
	"Significiant":  "Significant",
	"Hypothsis":     "Hypothesis",
	"Methodolgy":    "Methodology",
	"Framwork":      "Framework",
	"Implmentation": "Implementation",
	"Corelation":    "Correlation",
	"Efficency":     "Efficiency",
	"Optimzation":   "Optimization",
	"Algoritm":      "Algorithm",
	"Comparision":   "Comparison",
	"Improvment":    "Improvement",
	"Performace":    "Performance",
	"Managment":     "Management",
	"Developement":  "Development",
	"Infomation":    "Information",
	"Organiztion":   "Organization",
	"Interntional":  "International",
	"Environental":  "Environmental",
	"Artifical":     "Artificial",
	"Machne":        "Machine",
	"Learnng":       "Learning",
	"Manufactring":  "Manufacturing",
	"Producton":     "Production",
	"Distribtion":   "Distribution",
	"Consumtion":    "Consumption",
	"Investent":     "Investment",
	"Markting":      "Marketing",
	"Advertsing":    "Advertising",
	"Behavor":       "Behavior",
	"Psycholgy":     "Psychology",
	"Sociolgy":      "Sociology",
	"Politcal":      "Political",
	"Governent":     "Government",
	"Legisltion":    "Legislation",
	"Reginal":       "Regional",
	"Natinal":       "National",
	"Enery":         "Energy",
	"Renewble":      "Renewable",
	"Conservtion":   "Conservation",
	"Biodivrsity":   "Biodiversity",
	"Atmosphre":     "Atmosphere",
	"Emisssions":    "Emissions",
	"Footprnt":      "Footprint",
	"Digitl":        "Digital",
	"Computr":       "Computer",
	"Softwre":       "Software",
	"Hardwre":       "Hardware",
	"Netwrk":        "Network",
	"Robotcs":       "Robotics",
	"Automtion":     "Automation",
	"Simultion":     "Simulation",
	"Predicton":     "Prediction",
	"Forecsting":    "Forecasting",
	"Effectveness":  "Effectiveness",
	"Productvity":   "Productivity",
	"Qualiy":        "Quality",
	"Reliablity":    "Reliability",
	"Validty":       "Validity",
	"Accurcy":       "Accuracy",
	"Precison":      "Precision",
	"Measurment":    "Measurement",
	"Evaluaton":     "Evaluation",
	"Assessent":     "Assessment",
	"Synthsis":      "Synthesis",
	"Integrtion":    "Integration",
	"Executon":      "Execution",
	"Operaton":      "Operation",
	"Maintenace":    "Maintenance",
	"Enhancment":    "Enhancement",
	"Maximiztion":   "Maximization",
	"Minimiztion":   "Minimization",
}

// Phrase is a multi-word expression worth flagging, with its replacement.
type Phrase struct {
	// Text is the expression as it appears in prose.
	Text string

	// Suggestion is the replacement or advice shown to the user.
	Suggestion string
}

// RedundantPhrases lists wordy or informal expressions that academic prose
// should avoid. Latin-script entries are matched as whole words; CJK entries
// are matched as plain substrings.
var RedundantPhrases = []Phrase{
	// English wordiness.
	{Text: "in order to", Suggestion: "to"},
	{Text: "due to the fact that", Suggestion: "because"},
	{Text: "in spite of the fact that", Suggestion: "although"},
	{Text: "it is important to note that", Suggestion: "(omit)"},
	{Text: "for all intents and purposes", Suggestion: "essentially"},
	{Text: "could of", Suggestion: "could have"},
	{Text: "would of", Suggestion: "would have"},
	{Text: "should of", Suggestion: "should have"},

	// Contractions are out of register for academic prose.
	{Text: "can't", Suggestion: "cannot"},
	{Text: "don't", Suggestion: "do not"},
	{Text: "doesn't", Suggestion: "does not"},
	{Text: "won't", Suggestion: "will not"},
	{Text: "isn't", Suggestion: "is not"},
	{Text: "aren't", Suggestion: "are not"},
	{Text: "wasn't", Suggestion: "was not"},
	{Text: "couldn't", Suggestion: "could not"},
	{Text: "shouldn't", Suggestion: "should not"},

	// Chinese filler expressions.
	{Text: "事实上", Suggestion: "(直接陈述事实)"},
	{Text: "总的来说", Suggestion: "(可省略)"},
	{Text: "基本上", Suggestion: "(可省略)"},
	{Text: "实际上", Suggestion: "(直接陈述事实)"},
	{Text: "从某种程度上讲", Suggestion: "(更明确地表达)"},
	{Text: "可以说是", Suggestion: "(可省略)"},
}

// CasualHeadingPhrases lists wording that is too informal for a heading.
var CasualHeadingPhrases = []Phrase{
	{Text: "a lot of", Suggestion: "many"},
	{Text: "lots of", Suggestion: "many"},
	{Text: "stuff", Suggestion: "material"},
	{Text: "things like", Suggestion: "such as"},
	{Text: "kind of", Suggestion: "somewhat"},
	{Text: "sort of", Suggestion: "somewhat"},
}
