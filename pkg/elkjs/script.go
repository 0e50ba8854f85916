package elkjs

// layoutScript reads an ELK graph from stdin and writes the laid out graph
// to stdout. Failures exit with status 2 and the stack on stderr.
const layoutScript = `
const fs = require('fs');

let ELK;
try {
  ELK = require('elkjs/lib/elk.bundled.js');
} catch (err) {
  ELK = require('elkjs');
}

async function main() {
  const input = fs.readFileSync(0, 'utf8');
  const graph = JSON.parse(input || '{}');
  const elk = new ELK();
  const result = await elk.layout(graph);
  process.stdout.write(JSON.stringify(result));
}

main().catch((err) => {
  const message = err && err.stack ? err.stack : String(err);
  process.stderr.write(message + '\n');
  process.exit(2);
});
`
