// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synonym expands search terms into their known textual variants:
// ontology-sourced synonyms, greek-letter and spacing variants, and gene
// family roots. The cleaning rules here decide which collected strings are
// usable as literal query terms.
package synonym

import "regexp"

// greekEquivalents maps a spelled-out greek letter name to the characters
// treated as equivalent to it. Europe PMC folds case, but greek letters often
// have mathematical and lookalike variants that index as distinct characters.
var greekEquivalents = map[string][]string{
	"alpha":   {"α", "𝛂", "𝛼"},
	"beta":    {"β", "ϐ", "𝛽", "ᵝ"},
	"gamma":   {"γ", "𝛄", "ℽ", "𝛾"},
	"delta":   {"δ", "𝛿", "ẟ"},
	"epsilon": {"ε", "ɛ", "ϵ"},
	"zeta":    {"ζ", "𝛇"},
	"eta":     {"η"},
	"theta":   {"Θ", "ϑ", "Ѳ"},
	"iota":    {"Ι", "Ɩ"},
	"kappa":   {"Κ", "ϰ"},
	"lambda":  {"Λ"},
	// Lowercase mu and the micro sign render identically in many fonts.
	"mu":      {"Μ", "µ", "𝜇", "𝝁"},
	"nu":      {"Ν", "𝜈"},
	"xi":      {"ξ"},
	"omicron": {"Ο"},
	"pi":      {"Π", "ϖ", "𝜋"},
	"rho":     {"Ρ"},
	"sigma":   {"Σ", "ς", "𝜎"},
	"tau":     {"Τ"},
	"upsilon": {"Υ", "ϒ"},
	"phi":     {"φ", "ϕ", "Ф"},
	"chi":     {"χ"},
	"psi":     {"ψ", "𝛹"},
	"omega":   {"Ω", "ѡ"},
}

// hyphenVariants are the dash characters normalized to a plain hyphen before
// any other processing.
var hyphenVariants = []string{"-", "–", "—", "‑"}

// romanNumerals are the characters accepted inside parentheticals that carry
// meaning (e.g. "factor (VII)") and stripped from family-root stems.
var romanNumerals = []string{"I", "X", "V"}

// noiseIndicators are substrings that mark a collected term as curation
// chatter rather than a synonym. Ontology comment and description fields mix
// synonyms with links, citations and editor notes; any term containing one of
// these is dropped.
var noiseIndicators = []string{
	":", "@", " email ", "doi.org", "Wikipedia", "github", "TODO ", " et al",
	"th ed.", "[WP]", "see also", "see article", "Editor node", "Editor note",
	"Taxon notes ", "Consider merging", "mapping confirmed", "partof ",
	"Requires expert input", "UMLS CUI", "synonyms", " doid ", "doid/",
	"Xref ", "Definition based on", "characterized by", "symptoms ",
	"believed to be derived from", "We place ", "mice have ", "mouse has ",
	" to form ", "will be ceded", "use the term", "same name",
	"presumed but not proven", "occurs in", "are different", "term renamed",
}

// commonGeneNoise lists uppercase forms that appear as gene synonyms but are
// far more often something else in publications: amino acid codes, compounds,
// month abbreviations, statistical terms, English words, and synonyms shared
// by many genes. Matching gene synonyms are dropped for precision.
var commonGeneNoise = []string{
	"ALA", "ARG", "ASN", "ASP", "CYS", "GLN", "GLU", "GLY", "HIS", "ILE",
	"LEU", "LYS", "MET", "PHE", "PRO", "PYL", "SEC", "SER", "THR", "TRP",
	"TYR", "VAL",
	"CO2", "CO 2", "HCN", "MCL",
	"JAN", "FEB", "MAR", "APR", "APRIL", "MAY", "JUN", "JUL", "AUG", "SEP",
	"OCT", "NOV", "DEC",
	"A11", "ABBA", "ABL", "ABP", "ABS", "ACCA", "ACK", "ACS", "ACT", "AD3",
	"AD4", "AD5", "ADP", "AFT", "AGAS", "AGT", "AIK", "AIS", "AIT", "AKA",
	"ALBA", "ALC", "ALF", "ALP", "ALS", "ALY", "AMIGO", "AML 2", "AMP",
	"AMY", "ANA", "ANOVA", "APOLLO", "APPD", "APPL", "APX", "ARF", "ARIA",
	"ARTEMIS", "ARX", "ASC", "ASPS", "AST", "ATAR", "AURA", "B10", "BACH",
	"BAFF", "BAL", "BAM", "BAP", "BEF", "BEN", "BENE", "BEY", "BIM", "BKS",
	"BLAST", "BLS", "BOCA", "BOD", "BOM", "BOO", "BOP", "BOR", "BRL", "BTL",
	"BUN", "CAD", "CAL", "CALC", "CALIF", "CALP", "CAM", "CAMP", "CANION",
	"CAP", "CAPB", "CAPER", "CAPON", "CAPRICE", "CARF", "CARK", "CAS",
	"CASPER", "CAV", "CCT", "CDF", "CDR", "CEE", "CERT", "CHA", "CHASM",
	"CHICA", "CHICO", "CHIP", "CHIT", "CHN", "CHS", "CIA", "CIP", "CIR",
	"CIS", "CLAN", "CLAP", "CLASP", "CML", "COCO", "COCOA", "CPD", "CPL",
	"CPU", "CRES", "CRIP", "CRL", "CSS", "CST", "CT2", "CTF", "CTR", "CTS",
	"CYC", "D10", "DAG", "DALI", "DAMS", "DAN", "DANTE", "DAO", "DAP",
	"DAPPER", "DAT", "DBL", "DBP", "DEF", "DEG", "DELE", "DELTA", "DENTS",
	"DHP", "DIA", "DICER", "DIF", "DIP", "DISP", "DIVA", "DOM", "DOR",
	"DORA", "DOS", "DPS", "DRAGON", "DRAM", "DRT", "DTD", "DTP", "DUP",
	"EAD", "EDH", "EEN", "EGO", "EKG", "ELKS", "EMP", "ENED", "ENGL",
	"ENIGMA", "ENL", "EOS", "EPA", "EPI", "EPIL", "ERIC", "ERIS", "ESP",
	"EST", "EXP", "FAB", "FAC", "FAD", "FAE", "FAG", "FAS", "FDA", "FELS",
	"FIAT", "FIB", "FIP", "FIR", "FLATTOP", "FLT", "FOG", "FON", "FOP",
	"FPS", "FVL", "GADS", "GAJ", "GALA", "GAT", "GATA", "GDS", "GEM", "GEN",
	"GENESIS", "GGR", "GIP", "GIT", "GLI", "GLOB", "GOLIATH", "GOOFY",
	"GOR", "GOX", "GPCR", "GPD", "GPI", "GRAF", "GRAIL", "GRIPE", "GROG",
	"GRS", "GRX", "GUP", "HAF", "HAI", "HAK", "HALP", "HAP", "HARE", "HARP",
	"HBP", "HCA", "HCC", "HDR", "HDRS", "HED", "HEP", "HERMES", "HERP",
	"HES", "HET", "HEX", "HIC", "HILI", "HIPPI", "HIR", "HOGA", "HRG",
	"HRS", "HSM", "HYD", "HYL", "HYPE", "HYPERION", "ICEBERG", "IDOL",
	"IDP", "IFF", "IFI", "IMP", "INF", "IPL", "IPS", "JAMA", "JAMB", "JUNO",
	"KAB", "KAF", "KAL", "KALI", "KAP", "KAT", "KEN", "KEPI", "KET", "KGF",
	"KINO", "KIP", "KIST", "KLIP", "KOP", "KOR", "LAB", "LACS", "LAD",
	"LAH", "LAK", "LAN", "LAP", "LARGEN", "LAS", "LAT", "LAX", "LBP", "LCA",
	"LECT", "LED", "LIB", "LIM", "LIND", "LIPA", "LIR", "LIT", "LOR", "LPD",
	"LSK", "LUST", "LYRIC", "MACH", "MAD", "MAG", "MAGMAS", "MAIL", "MAIR",
	"MAL", "MANI", "MARC", "MARE", "MASA", "MAST", "MATER", "MCP", "MCT",
	"MED", "MENT", "MEP", "MER", "MFR", "MGR", "MIB", "MIDAS", "MIM",
	"MIMA", "MINERVA", "MINION", "MIR", "MIRK", "MIS", "MISE", "MMR",
	"MOCA", "MOLT", "MONA", "MONAD", "MOS", "MRS", "MSF", "MSS", "MTC",
	"MTD", "MTS", "MUD", "MUSTANG", "MUT", "MYG", "MYM", "NAF", "NAG",
	"NAK", "NAM", "NAN", "NAP", "NAPA", "NAR", "NARR", "NAT", "NBS", "NDF",
	"NEMO", "NEP", "NESH", "NIP", "NIPA", "NIS", "NIX", "NKR", "NOBODY",
	"NOS", "NOXA", "NPI", "NUANCE", "O11", "OASIS", "OBOE", "OPS", "OPT",
	"ORF", "OSSA", "OVAL", "PACT", "PAD", "PAL", "PAM", "PAP", "PAPA",
	"PAPAS", "PAR", "PARC", "PARI", "PARIS", "PARS", "PATE", "PAUL", "PBS",
	"PCP 2", "PCR", "PED", "PEGASUS", "PENUMBRA", "PEP", "PEPS", "PERF",
	"PES", "PESKY", "PICH", "PICOT", "PIKA", "PILAR", "PIPPIN", "PIS",
	"PIST", "PKG", "PLAP", "PMK", "POLK", "POTE", "PPD", "PPH", "PPT",
	"PRAT", "PREP", "PRIMA", "PRISM", "PRN", "PRP", "PSF", "PSST", "PST",
	"PTA", "PTC", "PTG", "PTP", "PURL", "RAC1", "RAD", "RAGA", "RAH",
	"RAMP", "RASI", "RAX", "REA", "REC", "REGR", "REN", "RHA", "RHOS",
	"RHS", "RIFF", "RISC", "RISP", "RIT", "RITA", "RNS", "ROG", "ROM",
	"ROS", "ROX", "RSS", "SAA", "SAB", "SAC", "SAG", "SAGE", "SAHH",
	"SALSA", "SAN", "SANCHO", "SANS", "SAP", "SAPS", "SARI", "SCAD",
	"SCAP", "SCF", "SCH", "SCOP", "SCOT", "SDS", "SECT", "SELS", "SELT",
	"SEME", "SEP", "SERA", "SERS", "SGD", "SHANK", "SHAPY", "SHP", "SIKE",
	"SIL", "SIMP", "SISE", "SIVA", "SLA", "SLAT", "SLD", "SLICK", "SLOB",
	"SLT", "SLY", "SMIT", "SNARK", "SOLO", "SONE", "SOUL", "SPAK",
	"SPARTAN", "SPL", "SPP", "SPR", "SPS", "SPT", "SRA", "STA", "STD",
	"STG", "STP", "STR", "STRAD", "STS", "SUP", "SWA", "SYL", "SYM", "SYN",
	"TAJ", "TALI", "TANGO", "TAPA", "TARA", "TAU", "TC1", "TCB", "TCI",
	"TEAP", "TECH", "TECK", "TED", "TEL", "TELE", "TEM", "TER", "TERA",
	"TERP", "TES", "TGT", "TIAR", "TIC", "TKT", "TLN", "TMC", "TMS", "TNT",
	"TOB", "TOM", "TOR", "TRAD", "TRAG", "TRF", "TRID", "TRP", "TRT",
	"TSK", "TSP", "TUBA", "TULA", "TYP", "UFO", "UGT", "UNRIP", "URB",
	"UTI", "VAN", "VASA", "VEL", "VIII", "VIN", "VIP", "VISTA", "WABS",
	"WARP", "WBS", "WICH", "WID", "YAP", "YETI", "YRS", "ZAC", "ZAG",
	"ZAK", "ZAP",
	"AMINO ACID TRANSPORTER", "BINDING PEPTIDE", "HYDROLASE", "PORIN",
	"PROTEIN C", "RNA PROCESSING FACTOR",
	"ELK", "ERB", "ERK", "GBP", "MST", "MPP", "P24", "P25", "P35", "P36",
	"P38", "P57", "P75", "P100", "P200", "RAB", "RBP",
	"AIM 1", "AIM 2", "AIM", "COX", "EPO", "FIG", "PCA", "REF", "TOP 2",
	"AFAR", "AFRO", "AGE", "AGO", "AID", "AIR", "ALIEN", "ALL", "APE",
	"APP", "APPS", "APT", "ARC", "ARCH", "ARK", "ARM", "ARMER", "ARMS",
	"ART", "ARTS", "ASAP", "ASK", "ATOPY", "BANK", "BAR", "BARS", "BART",
	"BASE", "BASH", "BAT", "BEST", "BIKE", "BIT", "BITE", "BLAME", "BOG",
	"BOMB", "BOULE", "BRAG", "BRAVO", "BRIGHT", "BRUCE", "CAGE", "CAIN",
	"CALM", "CAMEL", "CAN", "CAPS", "CAR", "CARDINAL", "CARMEN", "CARP",
	"CART", "CASH", "CAST", "CATS", "CAVA", "CHAMP", "CHIMP", "CHOP",
	"CIG", "CINEMA", "CLAMP", "CLINT", "CLIP", "COASTER", "COD", "COP",
	"COT", "CRAM", "CRAMP", "CREPT", "CREST", "CROP", "CUT", "DAMAGE",
	"DANCE", "DANGER", "DEAR", "DEEPEST", "DEFT", "DES", "DIETER", "DINE",
	"DING", "DREAM", "EAR", "EARS", "END", "ENRAGE", "ERA", "FACT", "FAME",
	"FAN", "FAST", "FAT", "FATE", "FATS", "FELL", "FETA", "FIND", "FISH",
	"FIX", "FLAME", "FLAP", "FLASH", "FLIP", "FOE", "FOR", "FRA", "FRITZ",
	"GAP", "GAS", "GASP", "GET", "GIF", "GILT", "GOA", "GOAT", "GRAB",
	"GREAT", "GRIT", "GULP", "HAD", "HANK", "HASNT", "HEED", "HELIOS",
	"HIP", "HITS", "HOP", "HUB", "HUG", "ICE", "INCA", "INCL", "IOTA",
	"JAB", "KID", "KILLER", "LAG", "LAMP", "LARD", "LARK", "LES", "LETS",
	"LIAR", "LIFEGUARD", "LIGHT", "LIME", "LIP", "LOBE", "LORD", "MAI",
	"MARK", "MART", "MASK", "MASS", "MAT", "MATT", "MATTER", "MEMO", "MEN",
	"MES", "MICE", "MINK", "MINOR", "MINT", "MIST", "MOB", "MOP", "MORT",
	"NAIL", "NEST", "NET", "NETS", "NEU", "NOPE", "NOT", "NUDE", "NUT",
	"ODD", "ORCA", "OUT", "PACER", "PALLID", "PANDA", "PANDER", "PARTICLE",
	"PEAS", "PEN", "PERK", "PILOT", "PIN", "PINCH", "PINS", "PINT",
	"PLEIAD", "PLUTO", "POEM", "POSH", "POSHER", "PREY", "PUMA",
	"PUNISHER", "RACE", "RAGS", "RAIN", "RAM", "RANK", "RAY", "RED",
	"RHINO", "RHO", "RICK", "RIG", "RIM", "RIP", "ROD", "SANG", "SCAR",
	"SCRAPS", "SECRET", "SEX", "SHARP", "SHIP", "SHOT", "SIMPLE", "SIN",
	"SIP", "SIT", "SKIP", "SKY", "SLACK", "SLAP", "SMILE", "SNAIL",
	"SNIP", "SPAR", "SPASM", "SPICE", "SPIN", "SPRIGHTLY", "SPRING",
	"STAR", "STARING", "STARS", "STELLAR", "STEP", "STING", "STOP",
	"STRAP", "STUD", "SWAN", "SWAP", "TACTILE", "TAG", "TAP", "TASK",
	"TAPS", "TAUT", "TEMP", "THANK", "THE", "THETA", "TIED", "TIM", "TIP",
	"TOP", "TRADE", "TRAIL", "TRAITS", "TRAM", "TRAMP", "TRANCE", "TRAP",
	"TRIM", "TRIP", "TROY", "TUBE", "TUG", "TUNA", "TWEAK", "TWINKLE",
	"TYPE", "VISA", "WAR", "WARS", "WARTS", "WAS", "WASP", "WASPS",
	"WAVE", "WHIP", "WHISTLE", "WIRE", "WISH", "WISP", "YES", "ZETA",
	"ZIP",
}

// stopWords are common English words; a gene synonym whose first or last word
// is a stop word is dropped.
var stopWords = []string{
	"a", "able", "about", "across", "after", "all", "almost", "also", "am",
	"among", "an", "and", "any", "are", "as", "at", "be", "because", "been",
	"but", "by", "can", "cannot", "could", "dear", "did", "do", "does",
	"either", "else", "ever", "every", "for", "from", "get", "got", "had",
	"has", "have", "he", "her", "hers", "him", "his", "how", "however",
	"i", "if", "in", "into", "is", "it", "its", "just", "least", "let",
	"like", "likely", "may", "me", "might", "most", "must", "my", "neither",
	"no", "nor", "not", "of", "off", "often", "on", "only", "or", "other",
	"our", "own", "rather", "said", "say", "says", "she", "should", "since",
	"so", "some", "than", "that", "the", "their", "them", "then", "there",
	"these", "they", "this", "tis", "to", "too", "twas", "us", "wants",
	"was", "we", "were", "what", "when", "where", "which", "while", "who",
	"whom", "why", "will", "with", "would", "yet", "you", "your",
}

// anatomyQualifiers maps an anatomy synonym (lowercased) to the adjectival
// qualifiers used for it in titles and abstracts, which ontology synonym
// lists rarely carry.
var anatomyQualifiers = map[string][]string{
	"brain":           {"cerebral", "cerebrally", "intracerebral"},
	"heart":           {"cardiac", "cardiomyocyte", "myocardial"},
	"kidney":          {"renal", "nephric"},
	"liver":           {"hepatic", "hepatocyte"},
	"lung":            {"pulmonary", "bronchial"},
	"skin":            {"cutaneous", "dermal", "epidermal"},
	"bone":            {"osseous", "skeletal", "osteo"},
	"cartilage":       {"chondral", "chondrocyte", "cartilaginous"},
	"joint":           {"articular", "synovial"},
	"muscle":          {"muscular", "myocyte"},
	"blood":           {"haematological", "hematological"},
	"stomach":         {"gastric"},
	"intestine":       {"intestinal", "enteric"},
	"eye":             {"ocular", "ophthalmic"},
	"spinal cord":     {"spinal"},
	"nerve":           {"neural", "neuronal"},
	"pancreas":        {"pancreatic"},
	"spleen":          {"splenic"},
	"bladder":         {"vesical"},
	"ovary":           {"ovarian"},
	"testis":          {"testicular"},
	"uterus":          {"uterine"},
	"breast":          {"mammary"},
	"blood vessel":    {"vascular", "endothelial"},
	"tendon":          {"tendinous", "tenocyte"},
	"synovial membrane": {"synovium", "synoviocyte"},
}

// Marker words stripped from collected synonyms rather than dropping the
// whole term.
var markerWords = []string{
	"EXACT", ", susceptibility to", "susceptibility to", "(working designation)",
	"working designation",
}

// Fixed-format identifier patterns. Names of these shapes never get spacing
// variants and never count as systematic family names: chromosome ORF codes
// (C9orf72), UNQ/PRO accessions, KIAA clone names.
var (
	orfCodeRe    = regexp.MustCompile(`^[Cc]\d+orf\d+$`)
	unqProCodeRe = regexp.MustCompile(`^UNQ\d+/PRO\d+$`)
	kiaaCodeRe   = regexp.MustCompile(`^KIAA\d+$`)
)
