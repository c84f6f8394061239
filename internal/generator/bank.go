package generator

import "learnmaths/internal/question"

// bankQuestions draws DefaultCount distinct questions from a bank and
// reshuffles choice options.
func bankQuestions(d *draw, bank question.Bank) (question.Set, error) {
	if len(bank.Questions) < DefaultCount {
		return nil, ErrQuestionSpaceExhausted
	}
	c := d.collector()
	for _, i := range d.rng.Perm(len(bank.Questions)) {
		if len(c.set) == DefaultCount {
			break
		}
		q := bank.Questions[i]
		if q.Kind == question.KindChoice {
			q = question.Choice(q.Text, q.Answer, d.shuffle(q.Options))
		}
		c.add(q)
	}
	if len(c.set) < DefaultCount {
		return nil, ErrQuestionSpaceExhausted
	}
	return c.set, nil
}
