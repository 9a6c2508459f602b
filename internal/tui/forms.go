package tui

import (
	"context"

	"github.com/papeleta/papel/internal/api"
	"github.com/papeleta/papel/internal/nav"
)

// DefaultFormSpecs wires the four operation forms to the service client.
// Downloads land in downloadDir as <uuid>.pdf.
func DefaultFormSpecs(client *api.Client, downloadDir string) []FormSpec {
	return []FormSpec{
		{
			Key:         nav.KeyUpload,
			Title:       "Enviar PDF",
			SubmitLabel: "enviar",
			FallbackErr: "Falha ao enviar o PDF",
			ResultLabel: "UUID",
			Fields: []FieldSpec{
				{Label: "Arquivo PDF", Placeholder: "caminho/para/arquivo.pdf", Missing: "Selecione um PDF"},
			},
			Submit: func(ctx context.Context, values []string) (string, error) {
				return client.Upload(ctx, values[0])
			},
		},
		{
			Key:         nav.KeyDownload,
			Title:       "Baixar PDF",
			SubmitLabel: "baixar",
			FallbackErr: "Falha ao baixar o arquivo",
			ResultLabel: "Salvo em",
			Fields: []FieldSpec{
				{Label: "UUID do arquivo", Placeholder: "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx", Missing: "Informe o UUID do arquivo"},
			},
			Submit: func(ctx context.Context, values []string) (string, error) {
				return client.Download(ctx, values[0], downloadDir)
			},
		},
		{
			Key:         nav.KeyMerge,
			Title:       "Juntar PDFs",
			SubmitLabel: "juntar",
			FallbackErr: "Falha ao juntar os PDFs",
			ResultLabel: "UUID",
			Fields: []FieldSpec{
				{Label: "Primeiro PDF", Placeholder: "caminho/para/a.pdf", Missing: "Selecione o primeiro PDF"},
				{Label: "Segundo PDF", Placeholder: "caminho/para/b.pdf", Missing: "Selecione o segundo PDF"},
			},
			Submit: func(ctx context.Context, values []string) (string, error) {
				return client.Merge(ctx, values[0], values[1])
			},
		},
		{
			Key:         nav.KeySplit,
			Title:       "Dividir PDF",
			SubmitLabel: "dividir",
			FallbackErr: "Falha ao dividir o PDF",
			ResultLabel: "UUID",
			Fields: []FieldSpec{
				{Label: "Arquivo PDF", Placeholder: "caminho/para/arquivo.pdf", Missing: "Selecione um PDF"},
				{Label: "Intervalo de páginas", Placeholder: "1-5", Missing: "Informe o intervalo, ex.: 1-5"},
			},
			Submit: func(ctx context.Context, values []string) (string, error) {
				return client.Extract(ctx, values[0], values[1])
			},
		},
	}
}
