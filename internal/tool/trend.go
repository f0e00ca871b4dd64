package tool

import (
	"fmt"

	"github.com/codex-k8s/ai-tools/internal/protocol"
)

type trendImpactAnalysis struct{}

func (trendImpactAnalysis) Info() Info {
	return Info{
		Name:        TrendImpactAnalysis,
		DisplayName: "Análise de Tendências",
		Description: "Descubra como uma tendência emergente afeta indústrias, setores e estratégias empresariais na era da inteligência artificial.",
		Fields: []Field{
			{Name: "tendencia_emergente", Label: "Tendência Emergente", MinLength: 3, Message: "Tendência muito curta (mínimo 3 caracteres)"},
		},
	}
}

func (trendImpactAnalysis) Fallback(inputs map[string]string) any {
	trend := value(inputs, "tendencia_emergente", "a tendência analisada")
	return protocol.TrendImpactAnalysis{
		Industries: []protocol.IndustryImpact{
			{Industry: fmt.Sprintf("Tecnologia (%s)", trend), Impact: protocol.ImpactPositive, Description: fmt.Sprintf("%s aumenta a eficiência de desenvolvimento de software e acelera a criação de novos produtos.", trend)},
			{Industry: "Marketing", Impact: protocol.ImpactPositive, Description: "Hiperpersonalização de campanhas e criação acelerada de conteúdo criativo."},
			{Industry: "Atendimento ao Cliente", Impact: protocol.ImpactNeutral, Description: "Automação resolve dúvidas simples, mas complexidade ainda exige intervenção humana."},
			{Industry: "Jurídico", Impact: protocol.ImpactNeutral, Description: "Auxílio na pesquisa, mas a responsabilidade final e o julgamento permanecem humanos."},
			{Industry: "Manufatura Tradicional", Impact: protocol.ImpactNegative, Description: "Desafios na integração de sistemas legados podem atrasar a adoção e a competitividade."},
			{Industry: "Educação Básica", Impact: protocol.ImpactNegative, Description: "Risco de dependência tecnológica excessiva sem o devido desenvolvimento do pensamento crítico."},
		},
		AdoptionTimeline: protocol.AdoptionTimeline{
			Horizon:       "Curto Prazo (1-2 anos)",
			Justification: fmt.Sprintf("Adoção rápida de %s devido à facilidade de acesso a ferramentas e modelos prontos.", trend),
		},
		MostImpacted: []string{"Software", "Marketing", "Atendimento", "Educação", "Jurídico"},
		RecommendedActions: []string{
			fmt.Sprintf("Investir em governança de dados e ética aplicadas a %s.", trend),
			"Capacitar times para trabalhar em colaboração com IA.",
			"Monitorar regulamentações emergentes.",
		},
	}
}
