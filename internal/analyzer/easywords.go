package analyzer

import "strings"

// easyWords is the reference list of common words familiar to young
// readers, after Dale-Chall. Words absent from the list (and not a
// simple inflection of a listed word) are classified as difficult.
var easyWords = buildEasyWordSet()

// inflectionSuffixes are the endings stripped when testing whether a
// word is an inflection of a listed word.
var inflectionSuffixes = []string{"s", "es", "ed", "d", "ing", "ly", "er", "est", "n"}

// isDifficultWord reports whether a word falls outside the easy-word
// list, allowing simple inflected forms of listed words.
func isDifficultWord(word string) bool {
	if len(word) <= 2 {
		return false
	}
	if easyWords[word] {
		return false
	}
	for _, suffix := range inflectionSuffixes {
		if strings.HasSuffix(word, suffix) {
			stem := strings.TrimSuffix(word, suffix)
			if easyWords[stem] {
				return false
			}
			// Doubled final consonant: running -> run.
			if len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] && easyWords[stem[:len(stem)-1]] {
				return false
			}
			// Dropped final e: making -> make.
			if easyWords[stem+"e"] {
				return false
			}
		}
	}
	return !easyWordFallback(word)
}

// easyWordFallback catches y/ie alternations: babies -> baby.
func easyWordFallback(word string) bool {
	if strings.HasSuffix(word, "ies") && easyWords[strings.TrimSuffix(word, "ies")+"y"] {
		return true
	}
	if strings.HasSuffix(word, "ied") && easyWords[strings.TrimSuffix(word, "ied")+"y"] {
		return true
	}
	return false
}

// countDifficultWords counts the difficult words in a word list.
func countDifficultWords(words []string) int {
	count := 0
	for _, word := range words {
		if isDifficultWord(word) {
			count++
		}
	}
	return count
}

func buildEasyWordSet() map[string]bool {
	set := make(map[string]bool, 2048)
	for _, line := range easyWordList {
		for _, word := range strings.Fields(line) {
			set[word] = true
		}
	}
	return set
}

// easyWordList holds the reference vocabulary, grouped alphabetically.
var easyWordList = []string{
	"a able about above across act add afraid after afternoon again against age ago agree air",
	"all almost alone along already also always am among an and angry animal another answer any",
	"anybody anyhow anyone anything anywhere apple are arm around arrive art as ask asleep at ate",
	"aunt away awful baby back bad bag bake ball balloon banana band bank bark barn basket",
	"bat bath be beach bean bear beat beautiful became because become bed bee been before began",
	"begin behind being believe bell belong below belt bench bend beside best bet better between big",
	"bike bill bird birthday bit bite black blanket blew blind block blood blow blue board boat",
	"body bone book boot born borrow both bottle bottom bought bow bowl box boy branch brave",
	"bread break breakfast breath brick bridge bright bring broke brother brought brown brush build built bunch",
	"burn bus busy but butter button buy by cabin cage cake call came camp can candy",
	"cap car card care careful carrot carry cart case cat catch cattle caught cause cent chair",
	"chance change chase cheek cheese cherry chest chicken chief child children chin choose church circle city",
	"clap class clay clean clear climb clock close cloth clothes cloud clown coal coat cold color",
	"come comfort company cook cool corn corner cost cotton could count country course cover cow crack",
	"crawl cream creek cried crop cross crowd crown cry cup cut dad daily dance danger dark",
	"date daughter day dead dear decide deep deer den desk did die different dig dinner dirt",
	"dirty dish do doctor does dog doll dollar done door double down dozen drank draw dream",
	"dress drink drive drop drove dry duck during dust each eager ear early earn earth east",
	"easy eat edge egg eight either eleven else empty end enemy enjoy enough even evening ever",
	"every everybody everyone everything everywhere exact except eye face fact fair fall family fan far farm",
	"farmer fast fat father fear feed feel feet fell fellow felt fence few field fight fill",
	"fin find fine finger finish fire first fish fit five fix flag flat flew floor flower",
	"fly fold follow food foot for forest forget forgot fork form fort forth found four fourth",
	"fox free fresh friend frog from front fruit full fun funny fur game garden gate gave",
	"get gift girl give glad glass go goat goes going gold gone good got grade grand",
	"grass gray great green grew ground group grow guess gun had hair half hall hand hang",
	"happen happy hard has hat hate have hay he head hear heard heart heat heavy held",
	"hello help hen her here herself hid hide high hill him himself his hit hold hole",
	"holiday home honey hop hope horn horse hot hour house how however hug huge hundred hung",
	"hungry hunt hurry hurt husband hut ice idea if ill important in inch indeed inside instead",
	"into iron is it its itself jacket jar job join joke joy jump just keep kept",
	"key kick kid kill kind king kiss kitchen kite kitten knee knew knife knock know known",
	"lady lake lamp land large last late laugh lay lazy lead leaf learn least leave left",
	"leg lesson let letter lick lid lie life lift light like line lion lip list listen",
	"little live load loaf lock log lone long look loose lost lot loud love low luck",
	"lump lunch mad made mail make man many map march mark market master mat match matter",
	"may maybe me meal mean meant meat meet men met middle might mile milk mind mine",
	"minute miss mix moment money monkey month moo moon more morning most mother mountain mouse mouth",
	"move much mud music must my myself nail name nap near neck need needle neighbor neither",
	"nest never new next nice night nine no nobody nod noise none noon nor north nose",
	"not note nothing now number nut oak ocean of off offer office often oh oil old",
	"on once one onion only open or orange order other our out outside over own owner",
	"pack page paid pail paint pair pan paper parade pardon parent park part party pass past",
	"paste pat path paw pay pea peace peach pear pen pencil penny people perhaps person pet",
	"pick picnic picture pie piece pig pile pin pink place plan plant plate play please plenty",
	"pocket point poke pole pond pony poor pop porch pot potato pound pour practice present pretty",
	"prize proud pull puppy push put queen quick quiet quite rabbit race rag rain raise ran",
	"ranch rather reach read ready real red remember rest return ribbon rice rich ride right ring",
	"ripe rise river road roar rob rock rode roll roof room rope rose round row rub",
	"rug rule run rush sack sad safe said sail salt same sand sang sat save saw",
	"say school sea season seat second secret see seed seem seen self sell send sent set",
	"seven several shade shake shall shape share sharp she sheep shell shine ship shirt shoe shone",
	"shook shoot shop shore short shot should shoulder shout show shut sick side sign silly silver",
	"since sing sister sit six size skin skip sky sled sleep slid slide slip slow small",
	"smart smell smile smoke snap snow so soap sock soft sold some somebody someone something sometime",
	"son song soon sorry sound soup south space speak spell spend spill splash spot spread spring",
	"square squirrel stand star start state station stay step stick still stone stood stop store storm",
	"story stove straight strange street strong such sudden sugar suit summer sun supper suppose sure surprise",
	"sweet swim swing table tail take talk tall tap taste teach teacher team tear teeth tell",
	"ten tent than thank that the their them then there these they thick thin thing think",
	"third this those though thought three threw through throw tie tiger tight time tiny tip to",
	"today toe together told tomorrow tone too took tooth top touch toward town toy track trade",
	"train tree trick trip truck true trust try turn twelve twenty twice two ugly uncle under",
	"understand until up upon us use usual valley very visit voice wag wagon wait wake walk",
	"wall want war warm was wash watch water wave way we wear weather week well went",
	"were west wet what wheel when where which while white who whole whose why wide wife",
	"wild will win wind window wing winter wipe wise wish with without woke woman women wonder",
	"wood wool word wore work world worm worry worth would wrap write wrong yard year yell",
	"yellow yes yesterday yet you young your yourself",
}
