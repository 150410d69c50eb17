package anthropic

// IdentifyMoviePrompt captures the instruction sent alongside every disc
// photo. Keep updates centralized here so it is easy to tweak without
// hunting through call sites. The title normalizer depends on the
// title-only response contract.
const IdentifyMoviePrompt = `This is a photo of a Blu-ray disc or its case. Please identify the movie title. Respond with ONLY the movie title, nothing else. If you cannot identify the movie, respond with 'Unknown'.`
