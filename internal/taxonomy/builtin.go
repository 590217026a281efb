// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import "github.com/pdiddy/arxiv-mcp/pkg/types"

// Builtin returns a fresh copy of the taxonomy shipped with the binary. It
// seeds the cache file and stands in when arxiv.org cannot be scraped.
func Builtin() types.Taxonomy {
	out := make(types.Taxonomy, len(builtin))
	for code, g := range builtin {
		subs := make(map[string]string, len(g.Subcategories))
		for k, v := range g.Subcategories {
			subs[k] = v
		}
		out[code] = types.CategoryGroup{Name: g.Name, Subcategories: subs}
	}
	return out
}

var builtin = types.Taxonomy{
	"cs": {
		Name: "Computer Science",
		Subcategories: map[string]string{
			"AI": "Artificial Intelligence",
			"AR": "Hardware Architecture",
			"CC": "Computational Complexity",
			"CE": "Computational Engineering, Finance, and Science",
			"CG": "Computational Geometry",
			"CL": "Computation and Language",
			"CR": "Cryptography and Security",
			"CV": "Computer Vision and Pattern Recognition",
			"CY": "Computers and Society",
			"DB": "Databases",
			"DC": "Distributed, Parallel, and Cluster Computing",
			"DL": "Digital Libraries",
			"DM": "Discrete Mathematics",
			"DS": "Data Structures and Algorithms",
			"ET": "Emerging Technologies",
			"FL": "Formal Languages and Automata Theory",
			"GL": "General Literature",
			"GR": "Graphics",
			"GT": "Computer Science and Game Theory",
			"HC": "Human-Computer Interaction",
			"IR": "Information Retrieval",
			"IT": "Information Theory",
			"LG": "Machine Learning",
			"LO": "Logic in Computer Science",
			"MA": "Multiagent Systems",
			"MM": "Multimedia",
			"MS": "Mathematical Software",
			"NA": "Numerical Analysis",
			"NE": "Neural and Evolutionary Computing",
			"NI": "Networking and Internet Architecture",
			"OH": "Other Computer Science",
			"OS": "Operating Systems",
			"PF": "Performance",
			"PL": "Programming Languages",
			"RO": "Robotics",
			"SC": "Symbolic Computation",
			"SD": "Sound",
			"SE": "Software Engineering",
			"SI": "Social and Information Networks",
			"SY": "Systems and Control",
		},
	},
	"econ": {
		Name: "Economics",
		Subcategories: map[string]string{
			"EM": "Econometrics",
			"GN": "General Economics",
			"TH": "Theoretical Economics",
		},
	},
	"eess": {
		Name: "Electrical Engineering and Systems Science",
		Subcategories: map[string]string{
			"AS": "Audio and Speech Processing",
			"IV": "Image and Video Processing",
			"SP": "Signal Processing",
			"SY": "Systems and Control",
		},
	},
	"math": {
		Name: "Mathematics",
		Subcategories: map[string]string{
			"AC": "Commutative Algebra",
			"AG": "Algebraic Geometry",
			"AP": "Analysis of PDEs",
			"AT": "Algebraic Topology",
			"CA": "Classical Analysis and ODEs",
			"CO": "Combinatorics",
			"CT": "Category Theory",
			"CV": "Complex Variables",
			"DG": "Differential Geometry",
			"DS": "Dynamical Systems",
			"FA": "Functional Analysis",
			"GM": "General Mathematics",
			"GN": "General Topology",
			"GR": "Group Theory",
			"GT": "Geometric Topology",
			"HO": "History and Overview",
			"IT": "Information Theory",
			"KT": "K-Theory and Homology",
			"LO": "Logic",
			"MG": "Metric Geometry",
			"MP": "Mathematical Physics",
			"NA": "Numerical Analysis",
			"NT": "Number Theory",
			"OA": "Operator Algebras",
			"OC": "Optimization and Control",
			"PR": "Probability",
			"QA": "Quantum Algebra",
			"RA": "Rings and Algebras",
			"RT": "Representation Theory",
			"SG": "Symplectic Geometry",
			"SP": "Spectral Theory",
			"ST": "Statistics Theory",
		},
	},
	"astro-ph": {
		Name: "Astrophysics",
		Subcategories: map[string]string{
			"CO": "Cosmology and Nongalactic Astrophysics",
			"EP": "Earth and Planetary Astrophysics",
			"GA": "Astrophysics of Galaxies",
			"HE": "High Energy Astrophysical Phenomena",
			"IM": "Instrumentation and Methods for Astrophysics",
			"SR": "Solar and Stellar Astrophysics",
		},
	},
	"cond-mat": {
		Name: "Condensed Matter",
		Subcategories: map[string]string{
			"dis-nn":    "Disordered Systems and Neural Networks",
			"mes-hall":  "Mesoscale and Nanoscale Physics",
			"mtrl-sci":  "Materials Science",
			"other":     "Other Condensed Matter",
			"quant-gas": "Quantum Gases",
			"soft":      "Soft Condensed Matter",
			"stat-mech": "Statistical Mechanics",
			"str-el":    "Strongly Correlated Electrons",
			"supr-con":  "Superconductivity",
		},
	},
	"nlin": {
		Name: "Nonlinear Sciences",
		Subcategories: map[string]string{
			"AO": "Adaptation and Self-Organizing Systems",
			"CD": "Chaotic Dynamics",
			"CG": "Cellular Automata and Lattice Gases",
			"PS": "Pattern Formation and Solitons",
			"SI": "Exactly Solvable and Integrable Systems",
		},
	},
	"physics": {
		Name: "Physics",
		Subcategories: map[string]string{
			"acc-ph":   "Accelerator Physics",
			"ao-ph":    "Atmospheric and Oceanic Physics",
			"app-ph":   "Applied Physics",
			"atm-clus": "Atomic and Molecular Clusters",
			"atom-ph":  "Atomic Physics",
			"bio-ph":   "Biological Physics",
			"chem-ph":  "Chemical Physics",
			"class-ph": "Classical Physics",
			"comp-ph":  "Computational Physics",
			"data-an":  "Data Analysis, Statistics and Probability",
			"ed-ph":    "Physics Education",
			"flu-dyn":  "Fluid Dynamics",
			"gen-ph":   "General Physics",
			"geo-ph":   "Geophysics",
			"hist-ph":  "History and Philosophy of Physics",
			"ins-det":  "Instrumentation and Detectors",
			"med-ph":   "Medical Physics",
			"optics":   "Optics",
			"plasm-ph": "Plasma Physics",
			"pop-ph":   "Popular Physics",
			"soc-ph":   "Physics and Society",
			"space-ph": "Space Physics",
		},
	},
	"gr-qc":    {Name: "General Relativity and Quantum Cosmology", Subcategories: map[string]string{}},
	"hep-ex":   {Name: "High Energy Physics - Experiment", Subcategories: map[string]string{}},
	"hep-lat":  {Name: "High Energy Physics - Lattice", Subcategories: map[string]string{}},
	"hep-ph":   {Name: "High Energy Physics - Phenomenology", Subcategories: map[string]string{}},
	"hep-th":   {Name: "High Energy Physics - Theory", Subcategories: map[string]string{}},
	"math-ph":  {Name: "Mathematical Physics", Subcategories: map[string]string{}},
	"nucl-ex":  {Name: "Nuclear Experiment", Subcategories: map[string]string{}},
	"nucl-th":  {Name: "Nuclear Theory", Subcategories: map[string]string{}},
	"quant-ph": {Name: "Quantum Physics", Subcategories: map[string]string{}},
	"q-bio": {
		Name: "Quantitative Biology",
		Subcategories: map[string]string{
			"BM": "Biomolecules",
			"CB": "Cell Behavior",
			"GN": "Genomics",
			"MN": "Molecular Networks",
			"NC": "Neurons and Cognition",
			"OT": "Other Quantitative Biology",
			"PE": "Populations and Evolution",
			"QM": "Quantitative Methods",
			"SC": "Subcellular Processes",
			"TO": "Tissues and Organs",
		},
	},
	"q-fin": {
		Name: "Quantitative Finance",
		Subcategories: map[string]string{
			"CP": "Computational Finance",
			"EC": "Economics",
			"GN": "General Finance",
			"MF": "Mathematical Finance",
			"PM": "Portfolio Management",
			"PR": "Pricing of Securities",
			"RM": "Risk Management",
			"ST": "Statistical Finance",
			"TR": "Trading and Market Microstructure",
		},
	},
	"stat": {
		Name: "Statistics",
		Subcategories: map[string]string{
			"AP": "Applications",
			"CO": "Computation",
			"ME": "Methodology",
			"ML": "Machine Learning",
			"OT": "Other Statistics",
			"TH": "Statistics Theory",
		},
	},
}
