package tool

import (
	"fmt"

	"github.com/codex-k8s/ai-tools/internal/protocol"
)

type professionalMap struct{}

func (professionalMap) Info() Info {
	return Info{
		Name:        ProfessionalMap,
		DisplayName: "Mapa Profissional",
		Description: "Alinhe propósito, estratégia e ações para sua carreira.",
		Fields: []Field{
			{Name: "o_que_move", Label: "O que te move", MinLength: 3, Message: "Obrigatório"},
			{Name: "como_gera_valor", Label: "Como gera valor", MinLength: 3, Message: "Obrigatório"},
			{Name: "lacunas", Label: "Lacunas", MinLength: 3, Message: "Obrigatório"},
			{Name: "novo_posicionamento", Label: "Novo posicionamento", MinLength: 3, Message: "Obrigatório"},
		},
	}
}

func (professionalMap) Fallback(inputs map[string]string) any {
	drive := value(inputs, "o_que_move", "gerar impacto positivo")
	position := value(inputs, "novo_posicionamento", "referência em transformação digital sustentável")
	return protocol.ProfessionalMapAnalysis{
		Purpose:  fmt.Sprintf("Gerar impacto positivo através de %s.", drive),
		Strategy: fmt.Sprintf("Posicionar-se como %s.", position),
		Actions: []string{
			"Fortalecer presença em eventos.",
			"Produzir conteúdo autoral.",
		},
		Horizons: []protocol.HorizonFocus{
			{Horizon: "Curto prazo", Focus: "Consolidar marca pessoal digital."},
			{Horizon: "Médio prazo", Focus: "Expandir influência como especialista."},
			{Horizon: "Longo prazo", Focus: "Liderar projetos de impacto global."},
		},
		Summary: "Unir propósito e estratégia ao se posicionar como líder.",
	}
}
