package remote

// System and instruction prompts for the delegated analysis and rewrite.

const analyzeSystemPrompt = `You are Prompt Mirror, a clarity coach. Respond with JSON that matches the schema.`

const analyzeInstructions = `Analyze the following prompt. Reply with JSON only using keys checks, flags, score, and notes. ` +
	`checks contains booleans for has_role, has_task, has_inputs, has_constraints, has_format, has_examples, has_steps, and has_success_criteria. ` +
	`flags.ambiguous_terms and flags.vague_quantifiers are string arrays. flags.dangling_pronouns is an integer. ` +
	`score is an integer 0-100. notes is an array of helpful strings.`

const rewriteSystemPrompt = `You are Prompt Mirror, a clarity coach. Rewrite prompts into structured briefs with role, task, inputs, constraints, format, steps, success criteria, and refusal boundaries sections.`

const rewriteInstructions = `Use the provided analysis JSON to fill gaps. Avoid ambiguous language. Include numbered steps and measurable constraints.`
