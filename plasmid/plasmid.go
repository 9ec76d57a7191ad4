/*
Plasmid is a genetic sequence toolkit: it prints both strands of a
DNA sequence with its translation, matches sequences against IUPAC
patterns, finds restriction sites and draws restriction maps.

Pretty print a sequence:

	plasmid pp ATGAAATAG

Find restriction sites in a FASTA file:

	plasmid digest --fasta plasmid.fst --enzyme EcoRI --enzyme NdeI

To see all the options run:

	plasmid --help
*/
package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("plasmid")
var formatter = logging.MustStringFormatter(`%{message}`)

// loggers lists the modules which honour -loglevel.
var loggers = []string{"plasmid", "seq", "enzyme", "store", "restmap"}

// command-line options
var (
	// application
	app = kingpin.New("plasmid", "genetic sequence toolkit").Version(version)

	// technical
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")

	// pretty print
	ppCmd      = app.Command("pp", "pretty print both strands and the translation")
	ppSequence = ppCmd.Arg("sequence", "DNA sequence (ACGT)").Required().String()
	ppStrand   = ppCmd.Flag("strand", "strand of the sequence (watson or crick)").Default("watson").Enum("watson", "crick")

	// match
	matchCmd      = app.Command("match", "match a sequence against a pattern")
	matchSequence = matchCmd.Arg("sequence", "DNA sequence (ACGT)").Required().String()
	matchPattern  = matchCmd.Arg("pattern", "DNA pattern (IUPAC)").Required().String()
	matchStrand   = matchCmd.Flag("strand", "strand of the sequence (watson or crick)").Default("watson").Enum("watson", "crick")

	// translate
	translateCmd      = app.Command("translate", "translate a sequence")
	translateSequence = translateCmd.Arg("sequence", "DNA sequence (or RNA with -rna)").Required().String()
	translateRna      = translateCmd.Flag("rna", "the sequence is RNA (ACGU)").Bool()
	translateLong     = translateCmd.Flag("long", "print three-letter codes").Bool()

	// digest
	digestCmd      = app.Command("digest", "find restriction sites")
	digestSequence = digestCmd.Arg("sequence", "DNA sequence (ACGT)").String()
	digestFasta    = digestCmd.Flag("fasta", "read sequences from a FASTA file").ExistingFile()
	digestEnzymes  = digestCmd.Flag("enzyme", "enzyme to use (repeatable), all enzymes by default").Strings()
	digestJSON     = digestCmd.Flag("json", "write json output to a file").String()

	// enzymes
	enzymesCmd = app.Command("enzymes", "list known restriction enzymes")

	// export
	exportCmd      = app.Command("export", "draw a restriction map")
	exportSequence = exportCmd.Arg("sequence", "DNA sequence (ACGT)").Required().String()
	exportOut      = exportCmd.Flag("out", "output file").Required().String()
	exportFormat   = exportCmd.Flag("format", "image format").Default("svg").Enum("svg", "png", "pdf", "eps")
	exportTitle    = exportCmd.Flag("title", "map title").String()
	exportEnzymes  = exportCmd.Flag("enzyme", "enzyme to draw (repeatable), all enzymes by default").Strings()

	// store
	saveCmd      = app.Command("save", "annotate a sequence and save it")
	saveName     = saveCmd.Arg("name", "sequence name").Required().String()
	saveSequence = saveCmd.Arg("sequence", "DNA sequence (ACGT)").Required().String()
	saveDB       = saveCmd.Flag("db", "sequence database").Default("plasmid.db").String()

	loadCmd  = app.Command("load", "print a saved sequence")
	loadName = loadCmd.Arg("name", "sequence name").Required().String()
	loadDB   = loadCmd.Flag("db", "sequence database").Default("plasmid.db").ExistingFile()

	listCmd = app.Command("list", "list saved sequences")
	listDB  = listCmd.Flag("db", "sequence database").Default("plasmid.db").ExistingFile()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, module := range loggers {
		logging.SetLevel(level, module)
	}

	log.Info(version)
	log.Info("Command line:", os.Args)

	out := os.Stdout
	switch command {
	case ppCmd.FullCommand():
		err = prettyPrint(out, *ppSequence, strandFromString(*ppStrand))
	case matchCmd.FullCommand():
		err = match(out, *matchSequence, *matchPattern, strandFromString(*matchStrand))
	case translateCmd.FullCommand():
		err = translate(out, *translateSequence, *translateRna, *translateLong)
	case digestCmd.FullCommand():
		err = digest(out, *digestSequence, *digestFasta, *digestEnzymes, *digestJSON)
	case enzymesCmd.FullCommand():
		err = listEnzymes(out)
	case exportCmd.FullCommand():
		err = export(*exportSequence, *exportOut, *exportFormat, *exportTitle, *exportEnzymes)
	case saveCmd.FullCommand():
		err = save(out, *saveDB, *saveName, *saveSequence)
	case loadCmd.FullCommand():
		err = load(out, *loadDB, *loadName)
	case listCmd.FullCommand():
		err = list(out, *listDB)
	}
	if err != nil {
		log.Fatal(err)
	}
}
