package matching

import (
	"strings"
)

// stopWords are common English words that never become keywords on their own.
var stopWords = newTermSet(
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "could", "did", "do", "does",
	"doing", "down", "during", "each", "etc", "few", "for", "from", "further",
	"had", "has", "have", "having", "he", "her", "here", "hers", "him", "his",
	"how", "i", "if", "in", "into", "is", "it", "its", "itself", "just", "me",
	"more", "most", "must", "my", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "ours", "out", "over", "own", "same",
	"she", "should", "so", "some", "such", "than", "that", "the", "their",
	"them", "then", "there", "these", "they", "this", "those", "through", "to",
	"too", "under", "until", "up", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with", "would",
	"you", "your", "yours", "within", "across", "able", "well", "work",
	"working", "years", "year", "experience", "experienced", "including",
	"strong", "team", "looking", "join", "role", "position", "skills",
	"knowledge", "ability", "requirements", "required", "preferred", "plus",
)

// technicalTerms is the curated skill vocabulary. Entries may contain spaces
// or slashes; those are matched against normalized text as phrases.
var technicalTerms = newTermSet(
	// languages
	"python", "python3", "java", "javascript", "typescript", "golang", "rust",
	"ruby", "php", "c++", "scala", "kotlin", "swift", "perl", "haskell",
	"elixir", "erlang", "clojure", "dart", "lua", "matlab", "bash", "shell",
	"sql", "nosql", "graphql", "html", "html5", "css", "css3", "sass",
	"objective-c", "vb.net", "solidity",

	// frameworks and runtimes
	"react", "react.js", "angular", "vue", "vue.js", "svelte", "next.js",
	"nuxt.js", "node.js", "express", "express.js", "django", "flask",
	"fastapi", "spring", "rails", "laravel", "symfony", ".net", "asp.net",
	"jquery", "redux", "tailwind", "bootstrap", "gin", "fiber", "grpc",
	"pytorch", "tensorflow", "keras", "pandas", "numpy", "scikit-learn",
	"spark", "hadoop", "kafka", "rabbitmq", "airflow", "dbt", "jupyter",
	"hibernate", "junit", "pytest", "jest", "cypress", "selenium", "webpack",

	// data stores
	"postgresql", "postgres", "mysql", "mariadb", "sqlite", "mongodb", "redis",
	"cassandra", "dynamodb", "elasticsearch", "opensearch", "snowflake",
	"bigquery", "redshift", "oracle", "neo4j", "couchbase", "memcached",

	// cloud and infrastructure
	"aws", "azure", "gcp", "docker", "kubernetes", "k8s", "terraform",
	"ansible", "puppet", "chef", "helm", "jenkins", "gitlab", "github",
	"circleci", "prometheus", "grafana", "datadog", "nginx", "apache", "linux",
	"unix", "serverless", "lambda", "ec2", "cloudformation", "openshift",
	"istio", "vault", "consul", "git", "devops", "sre", "microservices",
	"ci/cd",

	// practices and domains
	"api", "apis", "rest", "restful", "soap", "oauth", "jwt", "tdd", "bdd",
	"agile", "scrum", "kanban", "jira", "etl", "analytics", "nlp", "llm",
	"mlops", "blockchain", "cybersecurity", "front-end", "back-end",
	"full-stack", "frontend", "backend", "fullstack", "ios", "android",
	"figma", "tableau", "excel", "power bi", "websocket", "websockets",

	// multi-word
	"machine learning", "deep learning", "data science", "data engineering",
	"data analysis", "computer vision", "natural language processing",
	"artificial intelligence", "rest api", "restful api", "spring boot",
	"ruby on rails", "google cloud", "amazon web services", "react native",
	"unit testing", "integration testing", "test automation",
	"continuous integration", "continuous delivery", "distributed systems",
	"system design", "event driven", "message queue", "big data",
	"version control", "object oriented", "design patterns",
	"infrastructure as code", "site reliability", "cloud computing",
	"data structures", "sql server",
)

// multiWordTerms keeps catalog order so extraction is deterministic.
var multiWordTerms = collectMultiWord(technicalTerms)

type termSet struct {
	order []string
	index map[string]struct{}
}

func newTermSet(terms ...string) termSet {
	set := termSet{index: make(map[string]struct{}, len(terms))}
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, ok := set.index[term]; ok {
			continue
		}
		set.index[term] = struct{}{}
		set.order = append(set.order, term)
	}
	return set
}

func (s termSet) has(term string) bool {
	_, ok := s.index[strings.ToLower(term)]
	return ok
}

// phrase is a catalog term paired with the form it takes after Normalize.
type phrase struct {
	term string
	form string
}

func collectMultiWord(set termSet) []phrase {
	var phrases []phrase
	for _, term := range set.order {
		if !strings.ContainsAny(term, " /") {
			continue
		}
		phrases = append(phrases, phrase{term: term, form: Normalize(term)})
	}
	return phrases
}

// IsStopWord reports whether term is excluded from keyword candidacy.
func IsStopWord(term string) bool {
	return stopWords.has(term)
}

// IsTechnicalTerm reports whether term is part of the skill vocabulary.
func IsTechnicalTerm(term string) bool {
	return technicalTerms.has(term)
}

// MultiWordTechnicalTerms returns the catalog entries containing a space or
// a slash, in catalog order. The returned slice is a copy.
func MultiWordTechnicalTerms() []string {
	terms := make([]string, len(multiWordTerms))
	for i, p := range multiWordTerms {
		terms[i] = p.term
	}
	return terms
}

// searchForm returns the string to look for in normalized text when
// counting term.
func searchForm(term string) string {
	for _, p := range multiWordTerms {
		if p.term == term {
			return p.form
		}
	}
	return term
}
