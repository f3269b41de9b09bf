package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks for one value at a time on an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer. End of input yields
// whatever was typed so far, so a closed stdin behaves like pressing Enter.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Fill prompts for every field that was not passed as a flag, in form order.
// Empty answers keep the defaults: no return date means one-way and anything
// but "y" means connections are allowed.
func (p *Prompter) Fill(o *Options) error {
	steps := []struct {
		flag     string
		question string
		apply    func(string)
	}{
		{flagOrigin, "\nOrigin airport code (e.g., NYC, JFK): ", func(v string) { o.Origin = strings.ToUpper(v) }},
		{flagDestination, "Destination airport code (e.g., LAX, LHR): ", func(v string) { o.Destination = strings.ToUpper(v) }},
		{flagDeparture, "Departure date (YYYY-MM-DD): ", func(v string) { o.DepartureDate = v }},
		{flagReturn, "Return date (YYYY-MM-DD, or press Enter for one-way): ", func(v string) { o.ReturnDate = v }},
		{flagAdults, "Number of adult passengers (default: 1): ", func(v string) { o.Adults = v }},
		{flagNonStop, "Non-stop flights only? (y/n, default: n): ", func(v string) { o.NonStop = strings.ToLower(v) == "y" }},
		{flagMaxResults, "Maximum number of results (default: 10): ", func(v string) { o.MaxResults = v }},
		{flagCurrency, "Currency code (default: USD): ", func(v string) { o.Currency = strings.ToUpper(v) }},
	}

	for _, step := range steps {
		if o.isSet(step.flag) {
			continue
		}
		answer, err := p.Ask(step.question)
		if err != nil {
			return err
		}
		step.apply(answer)
	}
	return nil
}
