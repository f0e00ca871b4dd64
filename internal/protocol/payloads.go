package protocol

// Impact classifies how a trend affects an industry.
type Impact string

// Impact values.
const (
	ImpactPositive Impact = "Positivo"
	ImpactNegative Impact = "Negativo"
	ImpactNeutral  Impact = "Neutro"
)

// Valid reports whether the impact is one of the known values.
func (i Impact) Valid() bool {
	switch i {
	case ImpactPositive, ImpactNegative, ImpactNeutral:
		return true
	default:
		return false
	}
}

// TrendImpactAnalysis is the trend-impact-analysis payload.
type TrendImpactAnalysis struct {
	Industries         []IndustryImpact `json:"impactos_por_industria"`
	AdoptionTimeline   AdoptionTimeline `json:"timeline_adocao"`
	MostImpacted       []string         `json:"setores_mais_impactados"`
	RecommendedActions []string         `json:"acoes_recomendadas"`
}

// IndustryImpact describes the effect of a trend on one industry.
type IndustryImpact struct {
	Industry    string `json:"industria"`
	Impact      Impact `json:"impacto"`
	Description string `json:"descricao"`
}

// AdoptionTimeline estimates how fast a trend is adopted.
type AdoptionTimeline struct {
	Horizon       string `json:"prazo"`
	Justification string `json:"justificativa"`
}

// LegacyCreativeAnalysis is the legacy-creative payload.
type LegacyCreativeAnalysis struct {
	ContentTitle         string   `json:"titulo_conteudo"`
	CoreIdea             string   `json:"ideia_central"`
	SuggestedStructure   []string `json:"estrutura_sugerida"`
	RecommendedResources []string `json:"recursos_recomendados"`
	PublishingStrategy   string   `json:"estrategia_publicacao"`
	Summary              string   `json:"resumo_geral"`
}

// IntelligenceExtensionAnalysis is the intelligence-extension payload.
type IntelligenceExtensionAnalysis struct {
	SkillsAnalysis  string   `json:"analise_habilidades"`
	AIPotential     string   `json:"potencial_ia"`
	ApplicableIdeas []string `json:"ideias_aplicaveis"`
	MasteryVision   string   `json:"visao_de_dominio"`
	Summary         string   `json:"resumo_geral"`
}

// SustainableSolutionsAnalysis is the sustainable-solutions payload.
type SustainableSolutionsAnalysis struct {
	SimulationS3       string   `json:"simulacao_S3"`
	ExpectedBenefits   []string `json:"beneficios_previstos"`
	SustainableImpacts []string `json:"impactos_sustentaveis"`
	ImprovementsS4     string   `json:"melhorias_S4"`
	Summary            string   `json:"resumo_geral"`
}

// ReinventionManifestoAnalysis is the reinvention-manifesto payload.
type ReinventionManifestoAnalysis struct {
	Title        string `json:"titulo"`
	OpeningLine  string `json:"frase_abertura"`
	Manifesto    string `json:"manifesto"`
	Tone         string `json:"tom"`
	CallToAction string `json:"chamada_acao"`
}

// ProfessionalMapAnalysis is the professional-map payload.
type ProfessionalMapAnalysis struct {
	Purpose  string         `json:"proposito"`
	Strategy string         `json:"estrategia"`
	Actions  []string       `json:"acoes"`
	Horizons []HorizonFocus `json:"prazos"`
	Summary  string         `json:"resumo_geral"`
}

// HorizonFocus pairs a time horizon with the focus for it.
type HorizonFocus struct {
	Horizon string `json:"prazo"`
	Focus   string `json:"foco"`
}
