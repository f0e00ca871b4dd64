package tool

import (
	"fmt"

	"github.com/codex-k8s/ai-tools/internal/protocol"
)

type intelligenceExtension struct{}

func (intelligenceExtension) Info() Info {
	return Info{
		Name:        IntelligenceExtension,
		DisplayName: "Extensão da Inteligência",
		Description: "Descubra como a IA pode amplificar seu potencial combinando suas habilidades humanas.",
		Fields: []Field{
			{Name: "habilidade_principal", Label: "Habilidade principal", MinLength: 2, Message: "Obrigatório"},
			{Name: "objetivo_amplificacao", Label: "Objetivo de amplificação", MinLength: 5, Message: "Obrigatório"},
		},
	}
}

func (intelligenceExtension) Fallback(inputs map[string]string) any {
	skill := value(inputs, "habilidade_principal", "empatia, narrativa e estratégia")
	goal := value(inputs, "objetivo_amplificacao", "ampliar seu impacto")
	return protocol.IntelligenceExtensionAnalysis{
		SkillsAnalysis: fmt.Sprintf("Sua habilidade em %s cria um alicerce poderoso.", skill),
		AIPotential:    fmt.Sprintf("A IA pode analisar padrões de comportamento e linguagem em seus projetos para %s.", goal),
		ApplicableIdeas: []string{
			"Usar IA para analisar o tom emocional de suas mensagens.",
			"Desenvolver uma rotina semanal de brainstorming com IA.",
			"Criar um assistente inteligente que simule sua voz.",
		},
		MasteryVision: "Domínio verdadeiro acontece quando você usa a IA como extensão da sua consciência criativa.",
		Summary:       fmt.Sprintf("Ao unir %s com IA, você transforma tecnologia em sensibilidade aplicada.", skill),
	}
}
