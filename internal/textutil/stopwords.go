package textutil

import "golang.org/x/text/transform"

// stopwords is the fixed Portuguese stopword table consulted by Keywords.
// It is initialized once and never mutated, so concurrent reads need no
// locking. Lookups happen on normalized tokens, so each accented entry is
// indexed under its deaccented spelling as well.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range stopwordList {
		stopwords[w] = struct{}{}
		if plain, _, err := transform.String(deaccent(), w); err == nil {
			stopwords[plain] = struct{}{}
		}
	}
}

var stopwordList = []string{
	"a", "o", "e", "de", "do", "da", "em", "um", "para", "com", "não", "na",
	"se", "que", "por", "mais", "as", "como", "mas", "foi", "ele", "das",
	"tem", "à", "seu", "sua", "ou", "ser", "quando", "muito", "há", "nos",
	"já", "está", "eu", "também", "só", "pelo", "pela", "até", "isso", "ela",
	"entre", "era", "depois", "sem", "mesmo", "aos", "ter", "seus", "suas",
	"minha", "têm", "naquele", "essas", "esses", "pelos", "elas", "estava",
	"seja", "qual", "será", "nós", "tenho", "lhe", "deles", "pelas", "este",
	"fosse", "dele", "tu", "te", "você", "vocês", "lhes", "meus", "minhas",
	"teu", "tua", "teus", "tuas", "nosso", "nossa", "nossos", "nossas",
	"dela", "delas", "esta", "estes", "estas", "aquele", "aquela", "aqueles",
	"aquelas", "isto", "aquilo", "estou", "estamos", "estão", "estive",
	"esteve", "estivemos", "estiveram", "estávamos", "estavam", "estivera",
	"estivéramos", "esteja", "estejamos", "estejam", "estivesse",
	"estivéssemos", "estivessem", "estiver", "estivermos", "estiverem",
	"hei", "havemos", "hão", "houve", "houvemos", "houveram", "houvera",
	"houvéramos", "haja", "hajamos", "hajam", "houvesse", "houvéssemos",
	"houvessem", "houver", "houvermos", "houverem", "houverei", "houverá",
	"houveremos", "houverão", "houveria", "houveríamos", "houveriam", "sou",
	"somos", "são", "éramos", "eram", "fui", "fomos", "foram", "fora",
	"fôramos", "sejamos", "sejam", "fôssemos", "fossem", "for", "formos",
	"forem", "serei", "seremos", "serão", "seria", "seríamos", "seriam",
	"temos", "tinha", "tínhamos", "tinham", "tive", "teve", "tivemos",
	"tiveram", "tivera", "tivéramos", "tenha", "tenhamos", "tenham",
	"tivesse", "tivéssemos", "tivessem", "tiver", "tivermos", "tiverem",
	"terei", "terá", "teremos", "terão", "teria", "teríamos", "teriam",
}

// IsStopword reports whether the given token is in the Portuguese stopword
// table. Tokens are expected in normalized form.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
