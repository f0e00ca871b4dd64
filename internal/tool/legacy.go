package tool

import (
	"fmt"

	"github.com/codex-k8s/ai-tools/internal/protocol"
)

type legacyCreative struct{}

func (legacyCreative) Info() Info {
	return Info{
		Name:        LegacyCreative,
		DisplayName: "Legado Criativo",
		Description: "Estruture seus aprendizados para o futuro e deixe uma marca duradoura.",
		Fields: []Field{
			{Name: "aprendizados", Label: "Aprendizados", MinLength: 10, Message: "Descreva pelo menos 3 aprendizados (mínimo 10 caracteres)"},
			{Name: "formato", Label: "Formato", MinLength: 3, Message: "Defina um formato (ex: eBook, Curso)"},
		},
	}
}

func (legacyCreative) Fallback(inputs map[string]string) any {
	format := value(inputs, "formato", "e-book")
	learnings := value(inputs, "aprendizados", "seus aprendizados")
	return protocol.LegacyCreativeAnalysis{
		ContentTitle: "O Poder da Resiliência Criativa",
		CoreIdea:     fmt.Sprintf("Transformar %s em aprendizado contínuo e inspirar outras pessoas a não desistirem de criar.", learnings),
		SuggestedStructure: []string{
			"Introdução: A importância da resiliência no mundo moderno",
			"Capítulo 1: Como superar bloqueios criativos",
			"Capítulo 2: Aprender com o erro e seguir em frente",
			"Capítulo 3: Inspirar outras pessoas através do exemplo",
			"Conclusão: Criar é resistir, e resistir é um ato criativo",
		},
		RecommendedResources: []string{
			"ChatGPT ou n8n para roteirização de conteúdo",
			"Canva e Notion para organização",
		},
		PublishingStrategy: fmt.Sprintf("Publicar em formato de %s gratuito.", format),
		Summary:            "Ao transformar o aprendizado da resiliência em conteúdo, você cria um legado de inspiração prática.",
	}
}
