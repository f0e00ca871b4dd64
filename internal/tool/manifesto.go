package tool

import (
	"fmt"

	"github.com/codex-k8s/ai-tools/internal/protocol"
)

type reinventionManifesto struct{}

func (reinventionManifesto) Info() Info {
	return Info{
		Name:        ReinventionManifesto,
		DisplayName: "Manifesto de Reinvenção",
		Description: "Crie um guia inspirador para sua próxima versão, definindo o que fica e o que vai.",
		Fields: []Field{
			{Name: "continuar", Label: "O que continuar", MinLength: 5, Message: "Defina o que quer manter"},
			{Name: "parar", Label: "O que parar", MinLength: 5, Message: "Defina o que precisa parar"},
		},
	}
}

func (reinventionManifesto) Fallback(inputs map[string]string) any {
	keep := value(inputs, "continuar", "a chama da criatividade")
	stop := value(inputs, "parar", "o que já não me serve")
	return protocol.ReinventionManifestoAnalysis{
		Title:        "Manifesto da Minha Nova Versão",
		OpeningLine:  "Hoje escolho continuar sendo quem sou, mas de um novo jeito.",
		Manifesto:    fmt.Sprintf("Quero manter %s acesa, agora guiada por propósito, e deixo para trás %s.", keep, stop),
		Tone:         "inspirador e humano",
		CallToAction: "Reinvente-se todos os dias.",
	}
}
