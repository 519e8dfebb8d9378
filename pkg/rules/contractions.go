package rules

// contractionTable expands English contractions and corrects a curated
// list of common misspellings. Keys are lowercase; run the expander
// after lowercasing. Compound forms ("can't've") come before the
// shorter forms they contain, since rules chain in declaration order.
var contractionTable = []Rule{
	// Compound contractions.
	{"can't've", "cannot have"},
	{"couldn't've", "could not have"},
	{"he'd've", "he would have"},
	{"he'll've", "he will have"},
	{"how'd'y", "how do you"},
	{"i'd've", "i would have"},
	{"i'll've", "i will have"},
	{"it'd've", "it would have"},
	{"it'll've", "it will have"},
	{"mightn't've", "might not have"},
	{"mustn't've", "must not have"},
	{"needn't've", "need not have"},
	{"oughtn't've", "ought not have"},
	{"shan't've", "shall not have"},
	{"she'd've", "she would have"},
	{"she'll've", "she will have"},
	{"shouldn't've", "should not have"},
	{"they'd've", "they would have"},
	{"they'll've", "they will have"},
	{"we'd've", "we would have"},
	{"we'll've", "we will have"},
	{"what'll've", "what will have"},
	{"who'll've", "who will have"},
	{"won't've", "will not have"},
	{"wouldn't've", "would not have"},
	{"y'all'd've", "you all would have"},
	{"y'all're", "you all are"},
	{"y'all've", "you all have"},

	// Negations.
	{"ain't", "is not"},
	{"aren't", "are not"},
	{"can't", "cannot"},
	{"couldn't", "could not"},
	{"didn't", "did not"},
	{"doesn't", "does not"},
	{"don't", "do not"},
	{"hadn't", "had not"},
	{"hasn't", "has not"},
	{"haven't", "have not"},
	{"isn't", "is not"},
	{"mayn't", "may not"},
	{"mightn't", "might not"},
	{"mustn't", "must not"},
	{"needn't", "need not"},
	{"oughtn't", "ought not"},
	{"shan't", "shall not"},
	{"shouldn't", "should not"},
	{"wasn't", "was not"},
	{"weren't", "were not"},
	{"won't", "will not"},
	{"wouldn't", "would not"},

	// Pronoun + verb.
	{"i'm", "i am"},
	{"i've", "i have"},
	{"i'll", "i will"},
	{"i'd", "i would"},
	{"you're", "you are"},
	{"you've", "you have"},
	{"you'll", "you will"},
	{"you'd", "you would"},
	{"he's", "he is"},
	{"he'll", "he will"},
	{"he'd", "he would"},
	{"she's", "she is"},
	{"she'll", "she will"},
	{"she'd", "she would"},
	{"it's", "it is"},
	{"it'll", "it will"},
	{"it'd", "it would"},
	{"we're", "we are"},
	{"we've", "we have"},
	{"we'll", "we will"},
	{"we'd", "we would"},
	{"they're", "they are"},
	{"they've", "they have"},
	{"they'll", "they will"},
	{"they'd", "they would"},
	{"that's", "that is"},
	{"that'll", "that will"},
	{"that'd", "that would"},
	{"who's", "who is"},
	{"who've", "who have"},
	{"who'll", "who will"},
	{"who'd", "who would"},
	{"what's", "what is"},
	{"what're", "what are"},
	{"what've", "what have"},
	{"what'll", "what will"},
	{"when's", "when is"},
	{"where's", "where is"},
	{"where're", "where are"},
	{"where've", "where have"},
	{"why's", "why is"},
	{"why're", "why are"},
	{"how's", "how is"},
	{"how're", "how are"},
	{"how'd", "how did"},
	{"how'll", "how will"},
	{"here's", "here is"},
	{"there's", "there is"},
	{"there'll", "there will"},
	{"there'd", "there would"},
	{"this'll", "this will"},
	{"these're", "these are"},
	{"those're", "those are"},
	{"let's", "let us"},
	{"ma'am", "madam"},
	{"o'clock", "of the clock"},
	{"y'all", "you all"},
	{"'tis", "it is"},
	{"'twas", "it was"},
	{"somebody's", "somebody is"},
	{"someone's", "someone is"},
	{"something's", "something is"},
	{"everybody's", "everybody is"},
	{"everyone's", "everyone is"},
	{"everything's", "everything is"},
	{"nobody's", "nobody is"},
	{"nothing's", "nothing is"},
	{"could've", "could have"},
	{"should've", "should have"},
	{"would've", "would have"},
	{"might've", "might have"},
	{"must've", "must have"},

	// Colloquial compressions.
	{"gonna", "going to"},
	{"gotta", "got to"},
	{"wanna", "want to"},
	{"whatcha", "what are you"},
	{"kinda", "kind of"},
	{"sorta", "sort of"},
	{"outta", "out of"},
	{"lotta", "lot of"},
	{"lemme", "let me"},
	{"gimme", "give me"},
	{"dunno", "do not know"},
	{"betcha", "bet you"},
	{"gotcha", "got you"},
	{"c'mon", "come on"},
	{"cuppa", "cup of"},
	{"shoulda", "should have"},
	{"coulda", "could have"},
	{"woulda", "would have"},
	{"musta", "must have"},
	{"howdy", "how do you do"},

	// Common misspellings.
	{"abbout", "about"},
	{"accomodate", "accommodate"},
	{"acheive", "achieve"},
	{"accross", "across"},
	{"agressive", "aggressive"},
	{"apparantly", "apparently"},
	{"basicly", "basically"},
	{"becuase", "because"},
	{"begining", "beginning"},
	{"beleive", "believe"},
	{"belive", "believe"},
	{"buisness", "business"},
	{"calender", "calendar"},
	{"catagory", "category"},
	{"cemetary", "cemetery"},
	{"changable", "changeable"},
	{"collegue", "colleague"},
	{"comming", "coming"},
	{"commitee", "committee"},
	{"completly", "completely"},
	{"concious", "conscious"},
	{"definately", "definitely"},
	{"definitly", "definitely"},
	{"dissapear", "disappear"},
	{"dissapoint", "disappoint"},
	{"embarass", "embarrass"},
	{"enviroment", "environment"},
	{"existance", "existence"},
	{"familar", "familiar"},
	{"finaly", "finally"},
	{"foriegn", "foreign"},
	{"freind", "friend"},
	{"futher", "further"},
	{"goverment", "government"},
	{"gaurd", "guard"},
	{"happend", "happened"},
	{"harrass", "harass"},
	{"immediatly", "immediately"},
	{"independant", "independent"},
	{"intrest", "interest"},
	{"knowlege", "knowledge"},
	{"liason", "liaison"},
	{"libary", "library"},
	{"lisence", "licence"},
	{"maintainance", "maintenance"},
	{"maintenence", "maintenance"},
	{"neccessary", "necessary"},
	{"necessery", "necessary"},
	{"noticable", "noticeable"},
	{"occassion", "occasion"},
	{"occurance", "occurrence"},
	{"occured", "occurred"},
	{"oppurtunity", "opportunity"},
	{"paralel", "parallel"},
	{"peice", "piece"},
	{"persistant", "persistent"},
	{"posession", "possession"},
	{"prefered", "preferred"},
	{"propably", "probably"},
	{"publically", "publicly"},
	{"realy", "really"},
	{"recieve", "receive"},
	{"reccomend", "recommend"},
	{"recomend", "recommend"},
	{"refered", "referred"},
	{"relevent", "relevant"},
	{"religous", "religious"},
	{"remeber", "remember"},
	{"rember", "remember"},
	{"resistence", "resistance"},
	{"seperate", "separate"},
	{"succesful", "successful"},
	{"sucessful", "successful"},
	{"suprise", "surprise"},
	{"teh", "the"},
	{"tommorow", "tomorrow"},
	{"tommorrow", "tomorrow"},
	{"tomorow", "tomorrow"},
	{"truely", "truly"},
	{"unforseen", "unforeseen"},
	{"unfortunatly", "unfortunately"},
	{"untill", "until"},
	{"wierd", "weird"},
	{"whereever", "wherever"},
	{"wich", "which"},
}

// NewContractionExpander builds the literal rule set expanding English
// contractions and correcting curated misspellings. Pure data on top
// of LiteralRules.
func NewContractionExpander() *LiteralRules {
	return NewLiteralRules(contractionTable)
}
