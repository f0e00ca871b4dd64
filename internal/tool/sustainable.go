package tool

import (
	"fmt"

	"github.com/codex-k8s/ai-tools/internal/protocol"
)

type sustainableSolutions struct{}

func (sustainableSolutions) Info() Info {
	return Info{
		Name:        SustainableSolutions,
		DisplayName: "Soluções Sustentáveis",
		Description: "Transforme problemas em soluções sustentáveis através de simulação com IA.",
		Fields: []Field{
			{Name: "problema", Label: "Problema", MinLength: 5, Message: "Descreva o problema"},
			{Name: "explicacao", Label: "Explicação simplificada", MinLength: 5, Message: "Simplifique a explicação"},
		},
	}
}

func (sustainableSolutions) Fallback(inputs map[string]string) any {
	problem := value(inputs, "problema", "o problema descrito")
	return protocol.SustainableSolutionsAnalysis{
		SimulationS3: fmt.Sprintf("Um aplicativo que conecta restaurantes com ONGs locais para enfrentar %s.", problem),
		ExpectedBenefits: []string{
			"Redução de desperdício de alimentos.",
			"Diminuição dos custos de descarte.",
		},
		SustainableImpacts: []string{
			"Reduz emissão de CO2.",
			"Fortalece economia circular local.",
		},
		ImprovementsS4: "Implementar rastreabilidade via blockchain.",
		Summary:        "A solução proposta une tecnologia e impacto social.",
	}
}
