package dict

// baseWords is the embedded known-word list: high-frequency English words
// plus the academic vocabulary this tool is most often pointed at. The
// morphological fallbacks in Contains cover inflected forms, so only base
// forms need to be listed.
var baseWords = []string{
	// High-frequency function and core words.
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"into", "year", "your", "good", "some", "could", "them", "see", "other", "than",
	"then", "now", "look", "only", "come", "its", "over", "think", "also", "back",
	"after", "use", "two", "how", "our", "work", "first", "well", "way", "even",
	"new", "want", "because", "any", "these", "give", "day", "most", "us", "is",
	"are", "am", "more", "very", "much", "many", "each", "where", "why", "while",
	"such", "both", "may", "must", "shall", "should", "might", "between", "among", "through",
	"during", "before", "under", "again", "further", "once", "here", "same", "few", "own",
	"those", "against", "within", "without", "however", "therefore", "thus", "although", "whether", "since",

	// Everyday nouns, verbs, adjectives.
	"cat", "dog", "sat", "mat", "hat", "man", "woman", "child", "house", "home",
	"word", "world", "life", "hand", "part", "place", "case", "point", "fact", "group",
	"problem", "question", "right", "large", "small", "long", "short", "high", "low", "great",
	"little", "old", "young", "big", "different", "important", "public", "able", "bad", "early",
	"late", "hard", "easy", "strong", "weak", "true", "false", "real", "full", "free",
	"read", "write", "run", "walk", "stop", "start", "begin", "end", "open", "close",
	"find", "keep", "let", "put", "mean", "seem", "help", "show", "play", "move",
	"turn", "believe", "bring", "happen", "provide", "sit", "stand", "lose", "pay", "include",
	"continue", "set", "learn", "change", "lead", "understand", "watch", "follow", "create", "speak",
	"offer", "remember", "consider", "appear", "buy", "wait", "serve", "die", "send", "expect",
	"build", "stay", "fall", "cut", "reach", "kill", "remain", "suggest", "raise", "pass",
	"sell", "require", "report", "decide", "pull", "relate", "cause", "effect", "affect", "need",
	"order", "thing", "lot", "stuff", "succeed", "kind", "sort", "name", "line", "side",

	// Academic and research vocabulary.
	"research", "analysis", "method", "result", "conclusion", "study", "theory", "hypothesis",
	"experiment", "variable", "correlation", "significant", "evidence", "framework", "implementation",
	"development", "environment", "financial", "economic", "corporate", "business", "management",
	"strategy", "performance", "technology", "innovation", "sustainable", "organization", "industry",
	"production", "consumption", "investment", "marketing", "behavior", "psychology", "sociology",
	"political", "government", "regulation", "international", "global", "regional", "national",
	"population", "demographic", "environmental", "sustainability", "resource", "energy", "efficient",
	"renewable", "pollution", "conservation", "biodiversity", "ecosystem", "climate", "temperature",
	"atmosphere", "emission", "carbon", "footprint", "digital", "computer", "software", "hardware",
	"network", "internet", "database", "algorithm", "programming", "artificial", "intelligence",
	"machine", "learn", "robotics", "automation", "virtual", "reality", "augmented", "simulation",
	"model", "prediction", "forecast", "optimization", "efficiency", "effectiveness", "productivity",
	"quality", "reliability", "validity", "accuracy", "precision", "measurement", "evaluation",
	"assessment", "synthesis", "integration", "execution", "operation", "maintenance", "improvement",
	"enhancement", "geographic", "endowment", "asset", "allocation", "empirical", "share", "list",
	"approach", "section", "chapter", "figure", "table", "sample", "survey", "interview",
	"literature", "review", "abstract", "introduction", "discussion", "reference", "appendix",
	"significance", "limitation", "contribution", "implication", "methodology", "statistical",
	"qualitative", "quantitative", "observation", "participant", "procedure", "criterion",
	"phenomenon", "paradigm", "discipline", "journal", "publication", "citation", "author",
	"propose", "demonstrate", "indicate", "examine", "investigate", "analyze", "evaluate",
	"compare", "describe", "define", "identify", "establish", "obtain", "derive", "estimate",
	"measure", "observe", "conclude", "argue", "claim", "support", "reject", "confirm",
	"paper", "text", "sentence", "paragraph", "document", "language", "english", "chinese",
	"structure", "process", "system", "function", "feature", "value", "level", "rate",
	"factor", "element", "aspect", "context", "concept", "principle", "standard", "pattern",
	"relationship", "difference", "similarity", "increase", "decrease", "growth", "decline",
	"average", "total", "number", "percent", "proportion", "distribution", "range", "degree",
}
