package refdata

import (
	"github.com/shopspring/decimal"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// Static fallback tables. They mirror the admin-maintained catalogs and are
// served whenever the dynamic tables cannot be fetched; degradation is silent
// apart from the provenance tag.

func floatPtr(v float64) *float64 { return &v }

// StaticDiscountTypes is the built-in discount catalog.
func StaticDiscountTypes() []types.DiscountType {
	return []types.DiscountType{
		// Regulares
		{ID: "1", Codigo: "IIR", Descricao: "Alunos irmãos carnais", Categoria: types.CategoriaRegular, PercentualFixo: 10, RequerDocumentos: true,
			Documentos: []string{"Certidão de nascimento dos irmãos", "Comprovante de matrícula do(s) irmão(s)"}, Ativo: true},
		{ID: "2", Codigo: "RES", Descricao: "Alunos de outras cidades", Categoria: types.CategoriaRegular, PercentualFixo: 20, RequerDocumentos: true,
			Documentos: []string{"Comprovante de residência de outra cidade"}, Ativo: true},
		{ID: "9", Codigo: "PAV", Descricao: "Pagamento à vista", Categoria: types.CategoriaRegular, PercentualFixo: 15, RequerDocumentos: true,
			Documentos: []string{"Comprovante de pagamento integral"}, Ativo: true},

		// Especiais
		{ID: "3", Codigo: "PASS", Descricao: "Filhos de professores do IESJE sindicalizados", Categoria: types.CategoriaEspecial, PercentualFixo: 100, RequerDocumentos: true,
			Documentos: []string{"Vínculo empregatício", "Declaração de sindicalização"}, Ativo: true},
		{ID: "4", Codigo: "PBS", Descricao: "Filhos de professores sindicalizados de outras instituições", Categoria: types.CategoriaEspecial, PercentualFixo: 40, RequerDocumentos: true,
			Documentos: []string{"Comprovante de vínculo docente", "Comprovante de sindicalização"}, Ativo: true},
		{ID: "5", Codigo: "COL", Descricao: "Filhos de funcionários do IESJE sindicalizados (SAAE)", Categoria: types.CategoriaEspecial, PercentualFixo: 50, RequerDocumentos: true,
			Documentos: []string{"Vínculo com IESJE", "Comprovante de sindicalização SAAE"}, Ativo: true},
		{ID: "6", Codigo: "SAE", Descricao: "Filhos de funcionários de outros estabelecimentos sindicalizados (SAAE)", Categoria: types.CategoriaEspecial, PercentualFixo: 40, RequerDocumentos: true,
			Documentos: []string{"Comprovante de vínculo empregatício", "Comprovante SAAE"}, Ativo: true},
		{ID: "7", Codigo: "ABI", Descricao: "Bolsa integral filantropia", Categoria: types.CategoriaEspecial, PercentualFixo: 100, RequerDocumentos: true,
			Documentos: []string{"Processo de filantropia completo"}, Ativo: true},
		{ID: "8", Codigo: "ABP", Descricao: "Bolsa parcial filantropia", Categoria: types.CategoriaEspecial, PercentualFixo: 50, RequerDocumentos: true,
			Documentos: []string{"Processo de filantropia completo"}, Ativo: true},

		// Negociação (comerciais)
		{ID: "C1", Codigo: "CEP10", Descricao: "Comercial - CEP fora de Poços de Caldas", Categoria: types.CategoriaNegociacao, PercentualFixo: 10, Ativo: true},
		{ID: "C2", Codigo: "CEP5", Descricao: "Comercial - CEP em bairro de menor renda", Categoria: types.CategoriaNegociacao, PercentualFixo: 5, Ativo: true},
		{ID: "C3", Codigo: "ADIM2", Descricao: "Comercial - adimplente perfeito", Categoria: types.CategoriaNegociacao, PercentualFixo: 2, Ativo: true},
		{ID: "C4", Codigo: "COM_EXTRA", Descricao: "Comercial - extra (negociação)", Categoria: types.CategoriaNegociacao, Variavel: true, PercentualMaximo: 20, Ativo: true},
	}
}

// StaticTracks is the built-in track catalog.
func StaticTracks() []types.TrackDefinition {
	return []types.TrackDefinition{
		{
			ID:                   "especial",
			Nome:                 "Especial",
			CapPercentual:        nil, // unlimited, hard-clamped at 100
			CategoriasPermitidas: []string{types.CategoriaEspecial},
			CategoriaObrigatoria: types.CategoriaEspecial,
			Ativo:                true,
		},
		{
			ID:                   "combinado",
			Nome:                 "Combinado",
			CapPercentual:        floatPtr(25),
			CapComSecundario:     floatPtr(40),
			CategoriasPermitidas: []string{types.CategoriaRegular, types.CategoriaNegociacao},
			Ativo:                true,
		},
		{
			ID:                   "comercial",
			Nome:                 "Comercial",
			CapPercentual:        floatPtr(20),
			CategoriasPermitidas: []string{types.CategoriaNegociacao},
			CategoriaObrigatoria: types.CategoriaNegociacao,
			Ativo:                true,
		},
	}
}

// StaticCepRanges covers Poços de Caldas; anything outside them is "fora".
func StaticCepRanges() []types.CepRange {
	return []types.CepRange{
		// Centro e bairros de maior renda
		{Categoria: types.CategoriaAlta, Inicio: 37701000, Fim: 37701999, Descricao: "Centro", Ativo: true},
		{Categoria: types.CategoriaAlta, Inicio: 37702000, Fim: 37702499, Descricao: "Jardim dos Estados", Ativo: true},
		{Categoria: types.CategoriaAlta, Inicio: 37702500, Fim: 37702999, Descricao: "Country Club", Ativo: true},
		{Categoria: types.CategoriaAlta, Inicio: 37703000, Fim: 37703499, Descricao: "Vila Cruz", Ativo: true},
		{Categoria: types.CategoriaAlta, Inicio: 37709000, Fim: 37711999, Descricao: "Outros bairros centrais", Ativo: true},

		// Bairros de menor renda
		{Categoria: types.CategoriaBaixa, Inicio: 37704000, Fim: 37704999, Descricao: "Região Sul", Ativo: true},
		{Categoria: types.CategoriaBaixa, Inicio: 37705000, Fim: 37705999, Descricao: "São José", Ativo: true},
		{Categoria: types.CategoriaBaixa, Inicio: 37706000, Fim: 37706999, Descricao: "Vila Nova", Ativo: true},
		{Categoria: types.CategoriaBaixa, Inicio: 37707000, Fim: 37707999, Descricao: "Kennedy", Ativo: true},
		{Categoria: types.CategoriaBaixa, Inicio: 37708000, Fim: 37708999, Descricao: "Zona Leste", Ativo: true},
		{Categoria: types.CategoriaBaixa, Inicio: 37712000, Fim: 37713999, Descricao: "Zona Oeste", Ativo: true},
		{Categoria: types.CategoriaBaixa, Inicio: 37714000, Fim: 37719999, Descricao: "Periferia", Ativo: true},
	}
}

// StaticSeries is the fallback series table with monthly values including
// material and the material portion.
func StaticSeries() []types.Series {
	entries := []struct {
		nome     string
		valor    int64
		material int64
	}{
		{"1º ano", 700, 100},
		{"2º ano", 800, 100},
		{"3º ano", 900, 100},
		{"4º ano", 1000, 100},
		{"5º ano", 1100, 100},
		{"6º ano", 1200, 120},
		{"7º ano", 1300, 120},
		{"8º ano", 1400, 120},
		{"9º ano", 1500, 120},
		{"1ª série EM", 1600, 150},
		{"2ª série EM", 1700, 150},
		{"3ª série EM", 1800, 150},
	}

	series := make([]types.Series, 0, len(entries))
	for i, e := range entries {
		series = append(series, types.Series{
			ID:               e.nome,
			Nome:             e.nome,
			Escola:           "pelicano",
			ValorComMaterial: decimal.NewFromInt(e.valor),
			ValorMaterial:    decimal.NewFromInt(e.material),
			NumeroParcelas:   12,
			Ordem:            i + 1,
			Ativo:            true,
		})
	}
	return series
}

// PaymentMethods is the school's payment channel table with the extra
// discount each channel grants.
func PaymentMethods() []types.PaymentMethod {
	return []types.PaymentMethod{
		{ID: "boleto", Nome: "Boleto Bancário", Percentual: 0, Ativo: true},
		{ID: "pix", Nome: "PIX", Percentual: 2, Ativo: true},
		{ID: "cartao_credito", Nome: "Cartão de Crédito", Percentual: 0, Ativo: true},
		{ID: "cartao_debito", Nome: "Cartão de Débito", Percentual: 1, Ativo: true},
		{ID: "dinheiro", Nome: "Dinheiro", Percentual: 3, Ativo: true},
	}
}
