package enzyme

import "sync"

// reference lists the registry in caret notation, sorted by site.
var reference = [...]struct {
	name string
	site string
}{
	{"AclI", "AA^CGTT"},
	{"HindIII", "A^AGCTT"},
	{"SspI", "AAT^ATT"},
	{"MluCI", "^AATT"},
	{"PciI", "A^CATGT"},
	{"AgeI", "A^CCGGT"},
	{"SexAI", "A^CCWGGT"},
	{"MluI", "A^CGCGT"},
	{"HpyCH4IV", "A^CGT"},
	{"HpyCH4III", "ACN^GT"},
	{"AflIII", "A^CRYGT"},
	{"SpeI", "A^CTAGT"},
	{"BglII", "A^GATCT"},
	{"AfeI", "AGC^GCT"},
	{"AluI", "AG^CT"},
	{"StuI", "AGG^CCT"},
	{"ScaI", "AGT^ACT"},
	{"ClaI", "AT^CGAT"},
	{"BspDI", "AT^CGAT"},
	{"NsiI", "ATGCA^T"},
	{"AseI", "AT^TAAT"},
	{"SwaI", "ATTT^AAAT"},
	{"MfeI", "C^AATTG"},
	{"NbBssSI", "CACGAG^"},
	{"PmlI", "CAC^GTG"},
	{"DraIII", "CACNNN^GTG"},
	{"AleI_v2", "CACNN^NNGTG"},
	{"PvuII", "CAG^CTG"},
	{"AlwNI", "CAGNNN^CTG"},
	{"NdeI", "CA^TATG"},
	{"FatI", "^CATG"},
	{"CviAII", "C^ATG"},
	{"NlaIII", "CATG^"},
	{"MslI", "CAYNN^NNRTG"},
	{"XcmI", "CCANNNNN^NNNNTGG"},
	{"BstXI", "CCANNNNN^NTGG"},
	{"PflMI", "CCANNNN^NTGG"},
	{"NcoI", "C^CATGG"},
	{"SmaI", "CCC^GGG"},
	{"TspMI", "C^CCGGG"},
	{"XmaI", "C^CCGGG"},
	{"SacII", "CCGC^GG"},
	{"MspI", "C^CGG"},
	{"HpaII", "C^CGG"},
	{"StyD4I", "^CCNGG"},
	{"ScrFI", "CC^NGG"},
	{"BsaJI", "C^CNNGG"},
	{"BslI", "CCNNNNN^NNGG"},
	{"BtgI", "C^CRYGG"},
	{"NciI", "CC^SGG"},
	{"AvrII", "C^CTAGG"},
	{"NbBbvCI", "CCTCAGC^"},
	{"SbfI", "CCTGCA^GG"},
	{"Bsu36I", "CC^TNAGG"},
	{"EcoNI", "CCTNN^NNNAGG"},
	{"PspGI", "^CCWGG"},
	{"BstNI", "CC^WGG"},
	{"StyI", "C^CWWGG"},
	{"PvuI", "CGAT^CG"},
	{"BstUI", "CG^CG"},
	{"EagI", "C^GGCCG"},
	{"RsrII", "CG^GWCCG"},
	{"BsiEI", "CGRY^CG"},
	{"BsiWI", "C^GTACG"},
	{"BsmBI_v2", "CGTCTC^"},
	{"Hpy99I", "CGWCG^"},
	{"MspA1I", "CMG^CKG"},
	{"AbaSI", "CNNNNNNNNNNN^NNNNNNNNNG"},
	{"SgrAI", "CR^CCGGYG"},
	{"BfaI", "C^TAG"},
	{"XhoI", "C^TCGAG"},
	{"PaeR7I", "C^TCGAG"},
	{"PstI", "CTGCA^G"},
	{"DdeI", "C^TNAG"},
	{"SfcI", "C^TRYAG"},
	{"AflII", "C^TTAAG"},
	{"SmlI", "C^TYRAG"},
	{"BsoBI", "C^YCGRG"},
	{"AvaI", "C^YCGRG"},
	{"XmnI", "GAANN^NNTTC"},
	{"NbBsmI", "GAATGC^"},
	{"EcoRI", "G^AATTC"},
	{"AatII", "GACGT^C"},
	{"ZraI", "GAC^GTC"},
	{"PflFI", "GACN^NNGTC"},
	{"Tth111I", "GACN^NNGTC"},
	{"PshAI", "GACNN^NNGTC"},
	{"AhdI", "GACNNN^NNGTC"},
	{"DrdI", "GACNNNN^NNGTC"},
	{"Eco53kI", "GAG^CTC"},
	{"SacI", "GAGCT^C"},
	{"HinfI", "G^ANTC"},
	{"EcoRV", "GAT^ATC"},
	{"DpnII", "^GATC"},
	{"MboI", "^GATC"},
	{"Sau3AI", "^GATC"},
	{"DpnI", "GA^TC"},
	{"BsaBI", "GATNN^NNATC"},
	{"TfiI", "G^AWTC"},
	{"NbBsrDI", "GCAATG^"},
	{"NbBtsI", "GCAGTG^"},
	{"BstAPI", "GCANNNN^NTGC"},
	{"SphI", "GCATG^C"},
	{"SrfI", "GCCC^GGGC"},
	{"NgoMIV", "G^CCGGC"},
	{"NaeI", "GCC^GGC"},
	{"BglI", "GCCNNNN^NGGC"},
	{"AsiSI", "GCGAT^CGC"},
	{"HhaI", "GCG^C"},
	{"HinP1I", "G^CGC"},
	{"BssHII", "G^CGCGC"},
	{"NotI", "GC^GGCCGC"},
	{"Fnu4HI", "GC^NGC"},
	{"Cac8I", "GCN^NGC"},
	{"MwoI", "GCNNNNN^NNGC"},
	{"BmtI", "GCTAG^C"},
	{"NheI", "G^CTAGC"},
	{"BlpI", "GC^TNAGC"},
	{"TseI", "G^CWGC"},
	{"ApeKI", "G^CWGC"},
	{"Bsp1286I", "GDGCH^C"},
	{"BamHI", "G^GATCC"},
	{"HaeIII", "GG^CC"},
	{"FseI", "GGCCGG^CC"},
	{"SfiI", "GGCCNNNN^NGGCC"},
	{"NarI", "GG^CGCC"},
	{"SfoI", "GGC^GCC"},
	{"KasI", "G^GCGCC"},
	{"PluTI", "GGCGC^C"},
	{"AscI", "GG^CGCGCC"},
	{"PspOMI", "G^GGCCC"},
	{"ApaI", "GGGCC^C"},
	{"Sau96I", "G^GNCC"},
	{"NlaIV", "GGN^NCC"},
	{"Acc65I", "G^GTACC"},
	{"KpnI", "GGTAC^C"},
	{"BstEII", "G^GTNACC"},
	{"AvaII", "G^GWCC"},
	{"BanI", "G^GYRCC"},
	{"BaeGI", "GKGCM^C"},
	{"BsaHI", "GR^CGYC"},
	{"BanII", "GRGCY^C"},
	{"CviQI", "G^TAC"},
	{"RsaI", "GT^AC"},
	{"BstZ17I", "GTATAC^"},
	{"SalI", "G^TCGAC"},
	{"ApaLI", "G^TGCAC"},
	{"AccI", "GT^MKAC"},
	{"Hpy166II", "GTN^NAC"},
	{"Tsp45I", "^GTSAC"},
	{"HpaI", "GTT^AAC"},
	{"PmeI", "GTTT^AAAC"},
	{"HincII", "GTY^RAC"},
	{"BsiHKAI", "GWGCW^C"},
	{"TspRI", "NNCASTGNN^"},
	{"ApoI_HF", "R^AATTY"},
	{"ApoI", "R^AATTY"},
	{"NspI", "RCATG^Y"},
	{"BsrFI_v2", "R^CCGGY"},
	{"BstYI", "R^GATCY"},
	{"HaeII", "RGCGC^Y"},
	{"CviKI_1", "RG^CY"},
	{"EcoO109I", "RG^GNCCY"},
	{"PpuMI", "RG^GWCCY"},
	{"SnaBI", "TAC^GTA"},
	{"BspHI", "T^CATGA"},
	{"BspEI", "T^CCGGA"},
	{"TaqI_v2", "T^CGA"},
	{"NruI", "TCG^CGA"},
	{"Hpy188I", "TCN^GA"},
	{"Hpy188III", "TC^NNGA"},
	{"XbaI", "T^CTAGA"},
	{"BclI", "T^GATCA"},
	{"BclI_HF", "T^GATCA"},
	{"HpyCH4V", "TG^CA"},
	{"FspI", "TGC^GCA"},
	{"MscI", "TGG^CCA"},
	{"BsrGI", "T^GTACA"},
	{"MseI", "T^TAA"},
	{"PacI", "TTAAT^TAA"},
	{"PsiI_v2", "TTA^TAA"},
	{"BstBI", "TT^CGAA"},
	{"DraI", "TTT^AAA"},
	{"PspXI", "VC^TCGAGB"},
	{"BsaWI", "W^CCGGW"},
	{"BsaAI", "YAC^GTR"},
	{"EaeI", "Y^GGCCR"},
}

var (
	registryOnce sync.Once
	registry     []*Enzyme
	byName       map[string]*Enzyme
)

func loadRegistry() {
	registry = make([]*Enzyme, 0, len(reference))
	byName = make(map[string]*Enzyme, len(reference))
	for _, r := range reference {
		e, err := Parse(r.name, r.site)
		if err != nil {
			// the table is static, this is a programming error
			panic(err)
		}
		registry = append(registry, e)
		byName[e.name] = e
	}
	log.Debugf("Loaded %d restriction enzymes", len(registry))
}

// Registry returns the process-wide enzyme registry. It is built on
// first use and never modified; the returned slice must not be
// modified either.
func Registry() []*Enzyme {
	registryOnce.Do(loadRegistry)
	return registry
}

// Get returns a registry enzyme by name.
func Get(name string) (*Enzyme, bool) {
	registryOnce.Do(loadRegistry)
	e, ok := byName[name]
	return e, ok
}

// Names returns the registry enzyme names in registry order.
func Names() []string {
	reg := Registry()
	names := make([]string, len(reg))
	for i, e := range reg {
		names[i] = e.name
	}
	return names
}
