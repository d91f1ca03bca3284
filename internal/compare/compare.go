package compare

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"econome/internal/model"
)

const systemPrompt = `Você é um assistente de comparação de preços de supermercado.
Vai receber uma tabela de produtos com loja, nome e preço. Resuma em texto curto
onde estão as melhores ofertas e quais produtos equivalentes aparecem em mais de
uma loja. Mencione a data de verificação quando o preço estiver antigo.`

// BuildPrompt monta a tabela de preços enviada ao modelo.
func BuildPrompt(products []model.Product) string {
	var sb strings.Builder
	sb.WriteString("Loja | Produto | Preço | Verificado em\n")
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("%s | %s | %s | %s\n",
			p.StoreName,
			p.ProductName,
			p.Price.StringFixed(2),
			p.LastCheckedAt.Format("2006-01-02 15:04:05"),
		))
	}
	return sb.String()
}

// Compare pede ao modelo um resumo comparativo dos preços. A correspondência
// difusa entre produtos parecidos fica por conta do modelo, não do banco.
func Compare(ctx context.Context, client *openai.Client, products []model.Product) (string, error) {
	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: BuildPrompt(products)},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", err
	}

	answer := resp.Choices[0].Message.Content
	log.Printf("[compare] resposta do modelo (%d produtos): %s", len(products), answer)
	return answer, nil
}
